package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) ListAvailable(ctx context.Context, category domain.MenuCategory) ([]domain.MenuItem, error) {
	q := r.db.WithContext(ctx).Where("is_available = ?", true)
	if category != "" {
		q = q.Where("category = ?", string(category))
	}

	var rows []models.MenuItem
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return menuItemsToDomain(rows), nil
}

func (r *MenuRepository) List(ctx context.Context, category domain.MenuCategory, page, perPage int) ([]domain.MenuItem, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.MenuItem{})
	if category != "" {
		base = base.Where("category = ?", string(category))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.MenuItem
	err := base.
		Order("c_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return menuItemsToDomain(rows), total, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (domain.MenuItem, error) {
	var m models.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItem{}, domain.NotFoundError{Resource: "menu item"}
		}
		return domain.MenuItem{}, err
	}
	return menuItemToDomain(m), nil
}

func (r *MenuRepository) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	m := models.MenuItem{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		Image:       item.Image,
		IsAvailable: item.IsAvailable,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.MenuItem{}, err
	}
	return menuItemToDomain(m), nil
}

func (r *MenuRepository) Update(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	updates := map[string]any{
		"name":         item.Name,
		"description":  item.Description,
		"price":        item.Price,
		"category":     string(item.Category),
		"image":        item.Image,
		"is_available": item.IsAvailable,
	}
	tx := r.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", item.ID).Updates(updates)
	if tx.Error != nil {
		return domain.MenuItem{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.MenuItem{}, domain.NotFoundError{Resource: "menu item"}
	}
	return r.GetByID(ctx, item.ID)
}

func (r *MenuRepository) SetAvailable(ctx context.Context, id string, available bool) error {
	tx := r.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "menu item"}
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "menu item"}
	}
	return nil
}

func menuItemToDomain(m models.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    domain.MenuCategory(m.Category),
		Image:       m.Image,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CDate,
	}
}

func menuItemsToDomain(rows []models.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, menuItemToDomain(m))
	}
	return out
}
