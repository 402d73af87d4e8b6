package gateway

import (
	"testing"

	"github.com/deliciosaph/deliciosa/internal/config"
)

func newTestStorage(t *testing.T, publicBase string) *StorageGateway {
	t.Helper()

	g, err := NewStorageGateway(config.Storage{
		Endpoint:      "minio:9000",
		AccessKey:     "test",
		SecretKey:     "test",
		Bucket:        "deliciosa",
		PublicBaseURL: publicBase,
	})
	if err != nil {
		t.Fatalf("gateway init failed: %v", err)
	}
	return g
}

func TestObjectNameFromBucketURL(t *testing.T) {
	g := newTestStorage(t, "")

	name, err := g.objectNameFromURL("http://minio:9000/deliciosa/banner/abc.jpg")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name != "banner/abc.jpg" {
		t.Fatalf("unexpected object name %q", name)
	}
}

func TestObjectNameFromCDNAlias(t *testing.T) {
	g := newTestStorage(t, "https://cdn.deliciosaph.com/assets")

	name, err := g.objectNameFromURL("https://cdn.deliciosaph.com/assets/gallery/xyz.png")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name != "gallery/xyz.png" {
		t.Fatalf("unexpected object name %q", name)
	}
}

func TestObjectNameRejectsForeignURL(t *testing.T) {
	g := newTestStorage(t, "")

	if _, err := g.objectNameFromURL("https://example.com/other/thing.jpg"); err == nil {
		t.Fatalf("expected foreign urls to be rejected")
	}
}
