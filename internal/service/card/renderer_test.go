package card

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

type bundledFonts struct{}

func face(ttf []byte, size float64) font.Face {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func (bundledFonts) QuoteFace(ctx context.Context, size float64) font.Face {
	return face(goitalic.TTF, size)
}
func (bundledFonts) LabelFace(size float64) font.Face  { return face(goregular.TTF, size) }
func (bundledFonts) StrongFace(size float64) font.Face { return face(gobold.TTF, size) }

func decodeCard(t *testing.T, payload []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("payload is not a valid png: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRenderProducesFixedSquare(t *testing.T) {
	r := NewRenderer(bundledFonts{})

	payload := r.Render(context.Background(), testInspiration())

	w, h := decodeCard(t, payload)
	if w != CardSize || h != CardSize {
		t.Fatalf("expected %dx%d card, got %dx%d", CardSize, CardSize, w, h)
	}
}

func TestRenderWithoutOptionalFields(t *testing.T) {
	r := NewRenderer(bundledFonts{})

	insp := testInspiration()
	insp.Title = ""
	insp.Reference = ""
	insp.Image = ""

	payload := r.Render(context.Background(), insp)

	w, h := decodeCard(t, payload)
	if w != CardSize || h != CardSize {
		t.Fatalf("expected %dx%d card, got %dx%d", CardSize, CardSize, w, h)
	}
}

func TestRenderUnreachablePhotoDegrades(t *testing.T) {
	r := NewRenderer(bundledFonts{})

	insp := testInspiration()
	insp.Image = "http://127.0.0.1:1/nope.jpg"

	payload := r.Render(context.Background(), insp)

	w, h := decodeCard(t, payload)
	if w != CardSize || h != CardSize {
		t.Fatalf("expected %dx%d card, got %dx%d", CardSize, CardSize, w, h)
	}
}

func TestPlaceholderMatchesCardDimensions(t *testing.T) {
	r := NewRenderer(bundledFonts{})

	for _, caption := range []string{CaptionMissingID, CaptionNotFound} {
		payload := r.Placeholder(context.Background(), caption)

		w, h := decodeCard(t, payload)
		if w != CardSize || h != CardSize {
			t.Fatalf("placeholder %q: expected %dx%d, got %dx%d", caption, CardSize, CardSize, w, h)
		}
	}
}

func TestETag(t *testing.T) {
	a := ETag([]byte("one"))
	b := ETag([]byte("two"))

	if a == b {
		t.Fatalf("distinct payloads produced the same etag %s", a)
	}
	if a != ETag([]byte("one")) {
		t.Fatalf("etag is not stable for identical payloads")
	}
	if len(a) < 2 || a[0] != '"' || a[len(a)-1] != '"' {
		t.Fatalf("etag %s is not quoted", a)
	}
}

func testInspiration() domain.Inspiration {
	return domain.Inspiration{
		ID:        "abc",
		Title:     "Deli-verse Wednesday",
		Quote:     "Be still, and know that I am God.",
		Reference: "Psalm 46:10",
	}
}
