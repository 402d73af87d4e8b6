package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/service/card"
)

// Hashtags is the fixed block appended to every share caption. Editors
// copy captions verbatim, so the block is part of the public contract.
const Hashtags = "#DeliverseWednesday #deliciosaph #FaithWednesday #MidweekDevotion #BibleVerseOfTheDay #VerseForToday"

const captionEmoji = "🖤✨"

const facebookSharer = "https://www.facebook.com/sharer/sharer.php"

// SharePopupWidth and SharePopupHeight size the share-dialog window.
const (
	SharePopupWidth  = 626
	SharePopupHeight = 436
)

// ShareUsecase builds everything needed to share an inspiration: the
// page metadata consumed by link unfurlers, the caption editors post, and
// the share-dialog link.
type ShareUsecase struct {
	repo    InspirationRepository
	baseURL string
}

func NewShareUsecase(repo InspirationRepository, baseURL string) *ShareUsecase {
	return &ShareUsecase{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PageURL is the canonical share target. Share links always point here,
// never at the raw card image, because unfurlers read metadata from HTML.
func (uc *ShareUsecase) PageURL(id string) string {
	return fmt.Sprintf("%s/inspiration/%s", uc.baseURL, url.PathEscape(id))
}

// CardURL addresses the rendered square card for an inspiration.
func (uc *ShareUsecase) CardURL(id string) string {
	return fmt.Sprintf("%s/api/og?id=%s", uc.baseURL, url.QueryEscape(id))
}

// ResolveMetadata produces the share page's head metadata. It never fails:
// an unknown id yields a minimal default so head rendering always succeeds.
func (uc *ShareUsecase) ResolveMetadata(ctx context.Context, id string) domain.PageMetadata {
	insp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.PageMetadata{
			Title: "Weekly Inspiration - Deliciosa",
		}
	}

	attribution := insp.Reference
	if attribution == "" {
		attribution = domain.FooterBranding
	}

	// The purpose-built square card leads the list: unfurlers prefer the
	// first image, and the card is correctly sized even when the editor
	// uploaded no photo.
	images := []domain.MetadataImage{
		{
			URL:    uc.CardURL(insp.ID),
			Width:  card.CardSize,
			Height: card.CardSize,
			Alt:    insp.DisplayTitle(),
		},
	}
	if insp.Image != "" {
		images = append(images, domain.MetadataImage{
			URL:    insp.Image,
			Width:  1200,
			Height: 630,
			Alt:    "Inspiration Background",
		})
	}

	return domain.PageMetadata{
		Title:       insp.DisplayTitle(),
		Description: fmt.Sprintf("\"%s\" — %s", insp.Quote, attribution),
		Images:      images,
	}
}

// ComposeCaption renders the caption editors copy/paste. The template is
// byte-stable, including the em-dash line when the reference is empty.
func (uc *ShareUsecase) ComposeCaption(insp domain.Inspiration) string {
	return fmt.Sprintf("Midweek reminder: %s %s\n\n— %s\n\n%s", insp.Quote, captionEmoji, insp.Reference, Hashtags)
}

// BuildShareLink constructs the platform share-dialog URL around the share
// page (never the image) and the caption.
func (uc *ShareUsecase) BuildShareLink(pageURL, caption string) string {
	return fmt.Sprintf("%s?u=%s&quote=%s", facebookSharer, percentEncode(pageURL), percentEncode(caption))
}

// ShareInfo bundles the share assets for one inspiration.
type ShareInfo struct {
	Caption     string `json:"caption"`
	PageURL     string `json:"pageUrl"`
	CardURL     string `json:"cardUrl"`
	ShareURL    string `json:"shareUrl"`
	PopupWidth  int    `json:"popupWidth"`
	PopupHeight int    `json:"popupHeight"`
}

func (uc *ShareUsecase) ShareInfo(ctx context.Context, id string) (ShareInfo, error) {
	insp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return ShareInfo{}, err
	}

	caption := uc.ComposeCaption(insp)
	pageURL := uc.PageURL(insp.ID)

	return ShareInfo{
		Caption:     caption,
		PageURL:     pageURL,
		CardURL:     uc.CardURL(insp.ID),
		ShareURL:    uc.BuildShareLink(pageURL, caption),
		PopupWidth:  SharePopupWidth,
		PopupHeight: SharePopupHeight,
	}, nil
}

// percentEncode escapes like encodeURIComponent: spaces become %20, not +.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
