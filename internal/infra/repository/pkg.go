package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]domain.Package, error) {
	var rows []models.Package
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("c_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return packagesToDomain(rows), nil
}

func (r *PackageRepository) List(ctx context.Context, page, perPage int) ([]domain.Package, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Package{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Package
	err := r.db.WithContext(ctx).
		Order("c_date ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return packagesToDomain(rows), total, nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (domain.Package, error) {
	var m models.Package
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Package{}, domain.NotFoundError{Resource: "package"}
		}
		return domain.Package{}, err
	}
	return packageToDomain(m), nil
}

func (r *PackageRepository) Create(ctx context.Context, p domain.Package) (domain.Package, error) {
	m := models.Package{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		Image:       p.Image,
		Inclusions:  p.Inclusions,
		IsActive:    p.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Package{}, err
	}
	return packageToDomain(m), nil
}

func (r *PackageRepository) Update(ctx context.Context, p domain.Package) (domain.Package, error) {
	updates := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    string(p.Category),
		"image":       p.Image,
		"inclusions":  p.Inclusions,
		"is_active":   p.IsActive,
	}
	tx := r.db.WithContext(ctx).Model(&models.Package{}).Where("id = ?", p.ID).Updates(updates)
	if tx.Error != nil {
		return domain.Package{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Package{}, domain.NotFoundError{Resource: "package"}
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PackageRepository) SetActive(ctx context.Context, id string, active bool) error {
	tx := r.db.WithContext(ctx).Model(&models.Package{}).
		Where("id = ?", id).
		Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.Package{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

func packageToDomain(m models.Package) domain.Package {
	return domain.Package{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    domain.PackageCategory(m.Category),
		Image:       m.Image,
		Inclusions:  m.Inclusions,
		IsActive:    m.IsActive,
		CreatedAt:   m.CDate,
	}
}

func packagesToDomain(rows []models.Package) []domain.Package {
	out := make([]domain.Package, 0, len(rows))
	for _, m := range rows {
		out = append(out, packageToDomain(m))
	}
	return out
}
