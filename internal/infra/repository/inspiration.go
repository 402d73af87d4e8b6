package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type InspirationRepository struct {
	db *gorm.DB
}

func NewInspirationRepository(db *gorm.DB) *InspirationRepository {
	return &InspirationRepository{db: db}
}

func (r *InspirationRepository) GetByID(ctx context.Context, id string) (domain.Inspiration, error) {
	var m models.WeeklyInspiration
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Inspiration{}, domain.NotFoundError{Resource: "inspiration"}
		}
		return domain.Inspiration{}, err
	}
	return inspirationToDomain(m), nil
}

// MostRecentActive backs the homepage widget. Hidden inspirations are
// skipped here but still resolvable by ID.
func (r *InspirationRepository) MostRecentActive(ctx context.Context) (domain.Inspiration, error) {
	var m models.WeeklyInspiration
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("c_date DESC").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Inspiration{}, domain.NotFoundError{Resource: "inspiration"}
		}
		return domain.Inspiration{}, err
	}
	return inspirationToDomain(m), nil
}

// MostRecent is the editor's view: latest row regardless of active state.
func (r *InspirationRepository) MostRecent(ctx context.Context) (domain.Inspiration, error) {
	var m models.WeeklyInspiration
	err := r.db.WithContext(ctx).Order("c_date DESC").Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Inspiration{}, domain.NotFoundError{Resource: "inspiration"}
		}
		return domain.Inspiration{}, err
	}
	return inspirationToDomain(m), nil
}

func (r *InspirationRepository) Create(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error) {
	m := models.WeeklyInspiration{
		Title:     insp.Title,
		Quote:     insp.Quote,
		Reference: insp.Reference,
		Image:     insp.Image,
		IsActive:  insp.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Inspiration{}, err
	}
	return inspirationToDomain(m), nil
}

func (r *InspirationRepository) Update(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error) {
	updates := map[string]any{
		"title":     insp.Title,
		"quote":     insp.Quote,
		"reference": insp.Reference,
		"image":     insp.Image,
		"is_active": insp.IsActive,
	}
	tx := r.db.WithContext(ctx).Model(&models.WeeklyInspiration{}).
		Where("id = ?", insp.ID).
		Updates(updates)
	if tx.Error != nil {
		return domain.Inspiration{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Inspiration{}, domain.NotFoundError{Resource: "inspiration"}
	}
	return r.GetByID(ctx, insp.ID)
}

func (r *InspirationRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.WeeklyInspiration{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "inspiration"}
	}
	return nil
}

func inspirationToDomain(m models.WeeklyInspiration) domain.Inspiration {
	return domain.Inspiration{
		ID:        m.ID,
		Title:     m.Title,
		Quote:     m.Quote,
		Reference: m.Reference,
		Image:     m.Image,
		IsActive:  m.IsActive,
		CreatedAt: m.CDate,
	}
}
