package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

const fontCacheKey = "quote-font"

var (
	fallbackItalic  = mustParseFont(goitalic.TTF)
	fallbackRegular = mustParseFont(goregular.TTF)
	fallbackBold    = mustParseFont(gobold.TTF)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// FontGateway fetches the decorative serif used for the quote text. The
// fetch is best effort: any failure falls back to the bundled face so a
// card render never hard-fails on the font.
type FontGateway struct {
	url    string
	client *http.Client
	cache  *cache.Cache
}

func NewFontGateway(fontURL string) *FontGateway {
	return &FontGateway{
		url:    fontURL,
		client: &http.Client{Timeout: 5 * time.Second},
		cache:  cache.New(1*time.Hour, 2*time.Hour),
	}
}

// QuoteFace returns the serif face for quote text at the given size.
func (g *FontGateway) QuoteFace(ctx context.Context, size float64) font.Face {
	return truetype.NewFace(g.quoteFont(ctx), &truetype.Options{Size: size})
}

// LabelFace is used for the badge, footer and metadata labels.
func (g *FontGateway) LabelFace(size float64) font.Face {
	return truetype.NewFace(fallbackRegular, &truetype.Options{Size: size})
}

// StrongFace is used for the reference line.
func (g *FontGateway) StrongFace(size float64) font.Face {
	return truetype.NewFace(fallbackBold, &truetype.Options{Size: size})
}

func (g *FontGateway) quoteFont(ctx context.Context) *truetype.Font {
	if cached, found := g.cache.Get(fontCacheKey); found {
		return cached.(*truetype.Font)
	}

	if g.url == "" {
		return fallbackItalic
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		slog.Warn("font request build failed", slog.String("error", err.Error()))
		return fallbackItalic
	}

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Warn("font fetch failed", slog.String("error", err.Error()))
		return fallbackItalic
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("font fetch failed", slog.Int("status", resp.StatusCode))
		return fallbackItalic
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		slog.Warn("font read failed", slog.String("error", err.Error()))
		return fallbackItalic
	}

	parsed, err := truetype.Parse(data)
	if err != nil {
		slog.Warn("font parse failed", slog.String("error", err.Error()))
		return fallbackItalic
	}

	g.cache.Set(fontCacheKey, parsed, cache.DefaultExpiration)
	return parsed
}
