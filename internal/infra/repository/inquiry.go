package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/database/models"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	m := models.Inquiry{
		Name:      inq.Name,
		Email:     inq.Email,
		Phone:     inq.Phone,
		EventDate: inq.EventDate,
		Message:   inq.Message,
		Status:    string(domain.InquiryStatusNew),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Inquiry{}, err
	}
	return inquiryToDomain(m), nil
}

func (r *InquiryRepository) List(ctx context.Context, status domain.InquiryStatus, page, perPage int) ([]domain.Inquiry, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Inquiry{})
	if status != "" {
		base = base.Where("status = ?", string(status))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Inquiry
	err := base.
		Order("c_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Inquiry, 0, len(rows))
	for _, m := range rows {
		out = append(out, inquiryToDomain(m))
	}
	return out, total, nil
}

func (r *InquiryRepository) SetStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	tx := r.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "inquiry"}
	}
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.Inquiry{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "inquiry"}
	}
	return nil
}

func inquiryToDomain(m models.Inquiry) domain.Inquiry {
	return domain.Inquiry{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		EventDate: m.EventDate,
		Message:   m.Message,
		Status:    domain.InquiryStatus(m.Status),
		CreatedAt: m.CDate,
	}
}
