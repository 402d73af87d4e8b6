package usecase

import (
	"context"
	"fmt"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

type BannerUsecase struct {
	repo BannerRepository
}

func NewBannerUsecase(repo BannerRepository) *BannerUsecase {
	return &BannerUsecase{repo: repo}
}

func (uc *BannerUsecase) ListActive(ctx context.Context) ([]domain.Banner, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *BannerUsecase) List(ctx context.Context, page, perPage int) ([]domain.Banner, int64, error) {
	return uc.repo.List(ctx, page, perPage)
}

func (uc *BannerUsecase) Create(ctx context.Context, b domain.Banner) (domain.Banner, error) {
	if b.Image == "" {
		return domain.Banner{}, fmt.Errorf("image is required")
	}
	return uc.repo.Create(ctx, b)
}

func (uc *BannerUsecase) Update(ctx context.Context, b domain.Banner) (domain.Banner, error) {
	return uc.repo.Update(ctx, b)
}

func (uc *BannerUsecase) SetActive(ctx context.Context, id string, active bool) error {
	return uc.repo.SetActive(ctx, id, active)
}

func (uc *BannerUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

type MenuUsecase struct {
	repo MenuRepository
}

func NewMenuUsecase(repo MenuRepository) *MenuUsecase {
	return &MenuUsecase{repo: repo}
}

func (uc *MenuUsecase) ListAvailable(ctx context.Context, category domain.MenuCategory) ([]domain.MenuItem, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("unknown menu category: %s", category)
	}
	return uc.repo.ListAvailable(ctx, category)
}

func (uc *MenuUsecase) List(ctx context.Context, category domain.MenuCategory, page, perPage int) ([]domain.MenuItem, int64, error) {
	if category != "" && !category.Valid() {
		return nil, 0, fmt.Errorf("unknown menu category: %s", category)
	}
	return uc.repo.List(ctx, category, page, perPage)
}

func (uc *MenuUsecase) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if item.Name == "" {
		return domain.MenuItem{}, fmt.Errorf("name is required")
	}
	if !item.Category.Valid() {
		return domain.MenuItem{}, fmt.Errorf("unknown menu category: %s", item.Category)
	}
	return uc.repo.Create(ctx, item)
}

func (uc *MenuUsecase) Update(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if !item.Category.Valid() {
		return domain.MenuItem{}, fmt.Errorf("unknown menu category: %s", item.Category)
	}
	return uc.repo.Update(ctx, item)
}

func (uc *MenuUsecase) SetAvailable(ctx context.Context, id string, available bool) error {
	return uc.repo.SetAvailable(ctx, id, available)
}

func (uc *MenuUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

type GalleryUsecase struct {
	repo GalleryRepository
}

func NewGalleryUsecase(repo GalleryRepository) *GalleryUsecase {
	return &GalleryUsecase{repo: repo}
}

func (uc *GalleryUsecase) List(ctx context.Context, category domain.GalleryCategory, page, perPage int) ([]domain.GalleryItem, int64, error) {
	if category != "" && !category.Valid() {
		return nil, 0, fmt.Errorf("unknown gallery category: %s", category)
	}
	return uc.repo.List(ctx, category, page, perPage)
}

func (uc *GalleryUsecase) Create(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error) {
	if item.Image == "" {
		return domain.GalleryItem{}, fmt.Errorf("image is required")
	}
	if !item.Category.Valid() {
		return domain.GalleryItem{}, fmt.Errorf("unknown gallery category: %s", item.Category)
	}
	return uc.repo.Create(ctx, item)
}

func (uc *GalleryUsecase) Update(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error) {
	if !item.Category.Valid() {
		return domain.GalleryItem{}, fmt.Errorf("unknown gallery category: %s", item.Category)
	}
	return uc.repo.Update(ctx, item)
}

func (uc *GalleryUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

type PackageUsecase struct {
	repo PackageRepository
}

func NewPackageUsecase(repo PackageRepository) *PackageUsecase {
	return &PackageUsecase{repo: repo}
}

func (uc *PackageUsecase) ListActive(ctx context.Context) ([]domain.Package, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *PackageUsecase) List(ctx context.Context, page, perPage int) ([]domain.Package, int64, error) {
	return uc.repo.List(ctx, page, perPage)
}

func (uc *PackageUsecase) Create(ctx context.Context, p domain.Package) (domain.Package, error) {
	if p.Name == "" {
		return domain.Package{}, fmt.Errorf("name is required")
	}
	if !p.Category.Valid() {
		return domain.Package{}, fmt.Errorf("unknown package category: %s", p.Category)
	}
	return uc.repo.Create(ctx, p)
}

func (uc *PackageUsecase) Update(ctx context.Context, p domain.Package) (domain.Package, error) {
	if !p.Category.Valid() {
		return domain.Package{}, fmt.Errorf("unknown package category: %s", p.Category)
	}
	return uc.repo.Update(ctx, p)
}

func (uc *PackageUsecase) SetActive(ctx context.Context, id string, active bool) error {
	return uc.repo.SetActive(ctx, id, active)
}

func (uc *PackageUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
