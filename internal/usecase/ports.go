package usecase

import (
	"context"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

// InspirationRepository defines lookup/persistence for the weekly card.
type InspirationRepository interface {
	GetByID(ctx context.Context, id string) (domain.Inspiration, error)
	MostRecentActive(ctx context.Context) (domain.Inspiration, error)
	MostRecent(ctx context.Context) (domain.Inspiration, error)
	Create(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error)
	Update(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error)
	Delete(ctx context.Context, id string) error
}

type BannerRepository interface {
	ListActive(ctx context.Context) ([]domain.Banner, error)
	List(ctx context.Context, page, perPage int) ([]domain.Banner, int64, error)
	GetByID(ctx context.Context, id string) (domain.Banner, error)
	Create(ctx context.Context, b domain.Banner) (domain.Banner, error)
	Update(ctx context.Context, b domain.Banner) (domain.Banner, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type MenuRepository interface {
	ListAvailable(ctx context.Context, category domain.MenuCategory) ([]domain.MenuItem, error)
	List(ctx context.Context, category domain.MenuCategory, page, perPage int) ([]domain.MenuItem, int64, error)
	GetByID(ctx context.Context, id string) (domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	SetAvailable(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}

type GalleryRepository interface {
	List(ctx context.Context, category domain.GalleryCategory, page, perPage int) ([]domain.GalleryItem, int64, error)
	GetByID(ctx context.Context, id string) (domain.GalleryItem, error)
	Create(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error)
	Update(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type PackageRepository interface {
	ListActive(ctx context.Context) ([]domain.Package, error)
	List(ctx context.Context, page, perPage int) ([]domain.Package, int64, error)
	GetByID(ctx context.Context, id string) (domain.Package, error)
	Create(ctx context.Context, p domain.Package) (domain.Package, error)
	Update(ctx context.Context, p domain.Package) (domain.Package, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus, page, perPage int) ([]domain.Inquiry, int64, error)
	SetStatus(ctx context.Context, id string, status domain.InquiryStatus) error
	Delete(ctx context.Context, id string) error
}

// InquiryMailer relays a new inquiry to the café's inbox.
type InquiryMailer interface {
	SendInquiry(inq domain.Inquiry) error
}

// SignalPublisher fans events out to connected admin sessions.
type SignalPublisher interface {
	Publish(ctx context.Context, channel string, event domain.Event) error
}
