package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) List(ctx context.Context, category domain.GalleryCategory, page, perPage int) ([]domain.GalleryItem, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.GalleryItem{})
	if category != "" {
		base = base.Where("category = ?", string(category))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.GalleryItem
	err := base.
		Order("c_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.GalleryItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, galleryItemToDomain(m))
	}
	return out, total, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (domain.GalleryItem, error) {
	var m models.GalleryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GalleryItem{}, domain.NotFoundError{Resource: "gallery item"}
		}
		return domain.GalleryItem{}, err
	}
	return galleryItemToDomain(m), nil
}

func (r *GalleryRepository) Create(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error) {
	m := models.GalleryItem{
		Title:       item.Title,
		Description: item.Description,
		Image:       item.Image,
		Category:    string(item.Category),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.GalleryItem{}, err
	}
	return galleryItemToDomain(m), nil
}

func (r *GalleryRepository) Update(ctx context.Context, item domain.GalleryItem) (domain.GalleryItem, error) {
	updates := map[string]any{
		"title":       item.Title,
		"description": item.Description,
		"image":       item.Image,
		"category":    string(item.Category),
	}
	tx := r.db.WithContext(ctx).Model(&models.GalleryItem{}).Where("id = ?", item.ID).Updates(updates)
	if tx.Error != nil {
		return domain.GalleryItem{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.GalleryItem{}, domain.NotFoundError{Resource: "gallery item"}
	}
	return r.GetByID(ctx, item.ID)
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "gallery item"}
	}
	return nil
}

func galleryItemToDomain(m models.GalleryItem) domain.GalleryItem {
	return domain.GalleryItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Image:       m.Image,
		Category:    domain.GalleryCategory(m.Category),
		CreatedAt:   m.CDate,
	}
}
