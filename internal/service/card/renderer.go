// Package card renders the square social-share image for a weekly
// inspiration: brand gradient, optional translucent photo, title badge,
// the quote, its reference and a footer branding line.
package card

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/zeebo/xxh3"
	"golang.org/x/image/font"
	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

// Placeholder captions. Failures still produce a full-size card so that
// embedding clients never see a broken image.
const (
	CaptionMissingID = "ID Missing"
	CaptionNotFound  = "Not Found"
)

// FontProvider supplies typefaces. Faces are always usable: the provider
// degrades to bundled fonts instead of returning errors.
type FontProvider interface {
	QuoteFace(ctx context.Context, size float64) font.Face
	LabelFace(size float64) font.Face
	StrongFace(size float64) font.Face
}

type Renderer struct {
	fonts  FontProvider
	client *http.Client
}

func NewRenderer(fonts FontProvider) *Renderer {
	return &Renderer{
		fonts:  fonts,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Render composes the card for an inspiration. It never fails on optional
// assets: an unreachable photo or font only degrades visual fidelity.
func (r *Renderer) Render(ctx context.Context, insp domain.Inspiration) []byte {
	canvas := image.NewRGBA(image.Rect(0, 0, CardSize, CardSize))
	dc := gg.NewContextForRGBA(canvas)

	r.drawBackground(dc)

	if insp.Image != "" {
		if photo := r.fetchPhoto(ctx, insp.Image); photo != nil {
			drawPhotoLayer(canvas, photo)
		}
	}

	quoteFace := r.fonts.QuoteFace(ctx, quoteFontSize)
	dc.SetFontFace(quoteFace)
	quoted := fmt.Sprintf("\"%s\"", insp.Quote)
	lines := dc.WordWrap(quoted, contentMaxWidth)
	lineHeight := quoteFontSize * quoteLineSpacing
	quoteHeight := float64(len(lines)) * lineHeight

	badgeHeight := badgeFontSize + 2*badgePadY

	refHeight := 0.0
	if insp.Reference != "" {
		refHeight = ruleHeight + ruleGapBelow + referenceFontSize
	}

	totalHeight := badgeHeight + badgeGapBelow + quoteHeight
	if insp.Reference != "" {
		totalHeight += quoteGapBelow + refHeight
	}

	y := (CardSize - totalHeight) / 2

	r.drawBadge(dc, insp.DisplayTitle(), y, badgeHeight)
	y += badgeHeight + badgeGapBelow

	y = r.drawQuote(dc, quoteFace, lines, y, lineHeight)

	if insp.Reference != "" {
		y += quoteGapBelow
		r.drawReference(dc, insp.Reference, y)
	}

	r.drawFooter(dc)

	return encodePNG(canvas)
}

// Placeholder renders the failure variants: same canvas, caption instead
// of content.
func (r *Renderer) Placeholder(ctx context.Context, caption string) []byte {
	canvas := image.NewRGBA(image.Rect(0, 0, CardSize, CardSize))
	dc := gg.NewContextForRGBA(canvas)

	r.drawBackground(dc)

	dc.SetFontFace(r.fonts.QuoteFace(ctx, quoteFontSize))
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.DrawStringAnchored(caption, CardSize/2, CardSize/2, 0.5, 0.5)

	r.drawFooter(dc)

	return encodePNG(canvas)
}

// ETag derives a strong validator from the payload.
func ETag(payload []byte) string {
	return fmt.Sprintf("\"%016x\"", xxh3.Hash(payload))
}

func (r *Renderer) drawBackground(dc *gg.Context) {
	grad := gg.NewLinearGradient(0, 0, CardSize, CardSize)
	grad.AddColorStop(0, nrgbaOf(gradientTop))
	grad.AddColorStop(0.5, nrgbaOf(gradientMiddle))
	grad.AddColorStop(1, nrgbaOf(gradientTop))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, CardSize, CardSize)
	dc.Fill()
}

func (r *Renderer) fetchPhoto(ctx context.Context, url string) image.Image {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("card photo request build failed", slog.String("error", err.Error()))
		return nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		slog.Warn("card photo fetch failed", slog.String("error", err.Error()))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("card photo fetch failed", slog.Int("status", resp.StatusCode))
		return nil
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		slog.Warn("card photo decode failed", slog.String("error", err.Error()))
		return nil
	}
	return img
}

// drawPhotoLayer scales the photo to cover the canvas and composites it at
// reduced opacity so the text stays legible.
func drawPhotoLayer(canvas *image.RGBA, photo image.Image) {
	pb := photo.Bounds()
	if pb.Dx() == 0 || pb.Dy() == 0 {
		return
	}

	scale := float64(CardSize) / float64(pb.Dx())
	if s := float64(CardSize) / float64(pb.Dy()); s > scale {
		scale = s
	}
	w := int(float64(pb.Dx()) * scale)
	h := int(float64(pb.Dy()) * scale)
	offX := (CardSize - w) / 2
	offY := (CardSize - h) / 2

	scaled := image.NewRGBA(image.Rect(0, 0, CardSize, CardSize))
	xdraw.CatmullRom.Scale(scaled, image.Rect(offX, offY, offX+w, offY+h), photo, pb, xdraw.Over, nil)

	alpha := image.NewUniform(alpha8(photoAlpha))
	draw.DrawMask(canvas, canvas.Bounds(), scaled, image.Point{}, alpha, image.Point{}, draw.Over)
}

func (r *Renderer) drawBadge(dc *gg.Context, title string, top, height float64) {
	label := strings.ToUpper(title)
	face := r.fonts.LabelFace(badgeFontSize)
	dc.SetFontFace(face)

	textWidth := trackedWidth(dc, label, badgeTracking)
	iconSpan := badgeIconSize*2 + badgeIconGap
	width := textWidth + iconSpan + 2*badgePadX

	x := (CardSize - width) / 2
	radius := height / 2

	dc.SetRGBA(1, 1, 1, 0.1)
	dc.DrawRoundedRectangle(x, top, width, height, radius)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, top, width, height, radius)
	dc.Stroke()

	centerY := top + height/2

	dc.SetRGB(warmCream.r, warmCream.g, warmCream.b)
	drawSparkle(dc, x+badgePadX+badgeIconSize, centerY, badgeIconSize)

	drawTracked(dc, label, x+badgePadX+iconSpan, centerY, badgeTracking)
}

func (r *Renderer) drawQuote(dc *gg.Context, face font.Face, lines []string, top, lineHeight float64) float64 {
	dc.SetFontFace(face)

	y := top + lineHeight/2
	for _, line := range lines {
		// Drop shadow first so the glyphs stay readable over photos.
		dc.SetRGBA(0, 0, 0, 0.3)
		dc.DrawStringAnchored(line, CardSize/2, y+quoteShadowDrop, 0.5, 0.5)

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(line, CardSize/2, y, 0.5, 0.5)
		y += lineHeight
	}
	return top + float64(len(lines))*lineHeight
}

func (r *Renderer) drawReference(dc *gg.Context, reference string, top float64) {
	dc.SetRGB(warmCream.r, warmCream.g, warmCream.b)
	dc.DrawRoundedRectangle((CardSize-ruleWidth)/2, top, ruleWidth, ruleHeight, ruleHeight/2)
	dc.Fill()

	dc.SetFontFace(r.fonts.StrongFace(referenceFontSize))
	dc.DrawStringAnchored(reference, CardSize/2, top+ruleHeight+ruleGapBelow+referenceFontSize/2, 0.5, 0.5)
}

func (r *Renderer) drawFooter(dc *gg.Context) {
	dc.SetFontFace(r.fonts.LabelFace(footerFontSize))
	dc.SetRGBA(1, 1, 1, 0.6)

	label := strings.ToUpper(domain.FooterBranding)
	width := trackedWidth(dc, label, footerTracking)
	drawTracked(dc, label, (CardSize-width)/2, CardSize-footerBottom-footerFontSize/2, footerTracking)
}

// drawTracked draws a string with manual letterspacing, left-anchored at x,
// vertically centered on y.
func drawTracked(dc *gg.Context, s string, x, y, tracking float64) {
	pos := x
	for _, r := range s {
		glyph := string(r)
		w, _ := dc.MeasureString(glyph)
		dc.DrawStringAnchored(glyph, pos, y, 0, 0.5)
		pos += w + tracking
	}
}

func trackedWidth(dc *gg.Context, s string, tracking float64) float64 {
	total := 0.0
	n := 0
	for _, r := range s {
		w, _ := dc.MeasureString(string(r))
		total += w
		n++
	}
	if n > 1 {
		total += tracking * float64(n-1)
	}
	return total
}

// drawSparkle draws the four-point star glyph used in the badge.
func drawSparkle(dc *gg.Context, cx, cy, r float64) {
	dc.MoveTo(cx, cy-r)
	dc.QuadraticTo(cx, cy, cx+r, cy)
	dc.QuadraticTo(cx, cy, cx, cy+r)
	dc.QuadraticTo(cx, cy, cx-r, cy)
	dc.QuadraticTo(cx, cy, cx, cy-r)
	dc.ClosePath()
	dc.Fill()
}

func nrgbaOf(c colorRGB) color.NRGBA {
	return color.NRGBA{
		R: uint8(c.r*255 + 0.5),
		G: uint8(c.g*255 + 0.5),
		B: uint8(c.b*255 + 0.5),
		A: 255,
	}
}

func alpha8(a float64) color.Alpha {
	return color.Alpha{A: uint8(a*255 + 0.5)}
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory RGBA cannot fail; keep the contract anyway.
		slog.Error("card png encode failed", slog.String("error", err.Error()))
	}
	return buf.Bytes()
}
