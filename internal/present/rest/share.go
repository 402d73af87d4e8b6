package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/present/rest/presenter"
	"github.com/deliciosaph/deliciosa/internal/service/card"
)

// handleCard serves the rendered share card. The endpoint always answers
// 200 with a full-size image: link unfurlers treat non-200 as "no image"
// and would show a broken preview, so logical failures render placeholder
// variants instead.
func (h *Handler) handleCard(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.QueryParam("id")
	if id == "" {
		return h.serveCard(c, h.renderer.Placeholder(ctx, card.CaptionMissingID))
	}

	insp, err := h.inspiration.GetByID(ctx, id)
	if err != nil {
		// Store failures degrade to the same placeholder as a miss.
		return h.serveCard(c, h.renderer.Placeholder(ctx, card.CaptionNotFound))
	}

	payload := h.renderer.Render(ctx, insp)

	if c.QueryParam("download") == "1" {
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="inspiration-%s.png"`, insp.ID))
	}
	return h.serveCard(c, payload)
}

func (h *Handler) serveCard(c echo.Context, payload []byte) error {
	c.Response().Header().Set("ETag", card.ETag(payload))
	return c.Blob(http.StatusOK, "image/png", payload)
}

type sharePageData struct {
	Found    bool
	Meta     domain.PageMetadata
	Insp     domain.Inspiration
	Title    string
	PageURL  string
	HomeURL  string
	Branding string
}

// handleSharePage renders the human-facing share page. Its head carries
// the same metadata the resolver hands to unfurlers; the body mirrors the
// card design in markup.
func (h *Handler) handleSharePage(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	meta := h.share.ResolveMetadata(ctx, id)

	data := sharePageData{
		Meta:     meta,
		Title:    meta.Title,
		PageURL:  h.share.PageURL(id),
		HomeURL:  "/",
		Branding: domain.FooterBranding,
	}

	insp, err := h.inspiration.GetByID(ctx, id)
	if err == nil {
		data.Found = true
		data.Insp = insp
	}

	return c.Render(http.StatusOK, "inspiration.html", data)
}

// handleShareInfo hands the editor everything needed to post: the caption,
// the canonical page URL, the card URL and the share-dialog link.
func (h *Handler) handleShareInfo(c echo.Context) error {
	ctx := c.Request().Context()

	info, err := h.share.ShareInfo(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "inspiration not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, info)
}
