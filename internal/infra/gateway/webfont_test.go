package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuoteFaceFallsBackWithoutURL(t *testing.T) {
	g := NewFontGateway("")

	face := g.QuoteFace(context.Background(), 60)
	if face == nil {
		t.Fatalf("expected a usable fallback face")
	}
}

func TestQuoteFaceFallsBackOnFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := NewFontGateway(server.URL)

	face := g.QuoteFace(context.Background(), 60)
	if face == nil {
		t.Fatalf("expected a usable fallback face on a failed fetch")
	}
}

func TestQuoteFaceFallsBackOnGarbage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a font"))
	}))
	defer server.Close()

	g := NewFontGateway(server.URL)

	face := g.QuoteFace(context.Background(), 60)
	if face == nil {
		t.Fatalf("expected a usable fallback face on unparsable data")
	}
}
