package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type BannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

func (r *BannerRepository) ListActive(ctx context.Context) ([]domain.Banner, error) {
	var rows []models.Banner
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return bannersToDomain(rows), nil
}

func (r *BannerRepository) List(ctx context.Context, page, perPage int) ([]domain.Banner, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Banner{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Banner
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return bannersToDomain(rows), total, nil
}

func (r *BannerRepository) Create(ctx context.Context, b domain.Banner) (domain.Banner, error) {
	m := models.Banner{
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		LinkURL:     b.LinkURL,
		Order:       b.Order,
		IsActive:    b.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Banner{}, err
	}
	return bannerToDomain(m), nil
}

func (r *BannerRepository) Update(ctx context.Context, b domain.Banner) (domain.Banner, error) {
	updates := map[string]any{
		"title":         b.Title,
		"description":   b.Description,
		"image":         b.Image,
		"link_url":      b.LinkURL,
		"display_order": b.Order,
		"is_active":     b.IsActive,
	}
	tx := r.db.WithContext(ctx).Model(&models.Banner{}).Where("id = ?", b.ID).Updates(updates)
	if tx.Error != nil {
		return domain.Banner{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Banner{}, domain.NotFoundError{Resource: "banner"}
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BannerRepository) GetByID(ctx context.Context, id string) (domain.Banner, error) {
	var m models.Banner
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Banner{}, domain.NotFoundError{Resource: "banner"}
		}
		return domain.Banner{}, err
	}
	return bannerToDomain(m), nil
}

func (r *BannerRepository) SetActive(ctx context.Context, id string, active bool) error {
	tx := r.db.WithContext(ctx).Model(&models.Banner{}).
		Where("id = ?", id).
		Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "banner"}
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "banner"}
	}
	return nil
}

func bannerToDomain(m models.Banner) domain.Banner {
	return domain.Banner{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Image:       m.Image,
		LinkURL:     m.LinkURL,
		Order:       m.Order,
		IsActive:    m.IsActive,
		CreatedAt:   m.CDate,
	}
}

func bannersToDomain(rows []models.Banner) []domain.Banner {
	out := make([]domain.Banner, 0, len(rows))
	for _, m := range rows {
		out = append(out, bannerToDomain(m))
	}
	return out
}
