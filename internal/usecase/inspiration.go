package usecase

import (
	"context"
	"fmt"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

type InspirationUsecase struct {
	repo InspirationRepository
}

func NewInspirationUsecase(repo InspirationRepository) *InspirationUsecase {
	return &InspirationUsecase{repo: repo}
}

// GetByID resolves any inspiration regardless of active state; editors
// preview and share hidden ones directly by id.
func (uc *InspirationUsecase) GetByID(ctx context.Context, id string) (domain.Inspiration, error) {
	return uc.repo.GetByID(ctx, id)
}

// Current backs the public homepage widget: most recent active only.
func (uc *InspirationUsecase) Current(ctx context.Context) (domain.Inspiration, error) {
	return uc.repo.MostRecentActive(ctx)
}

// Latest is the editor's view of the newest row, active or not.
func (uc *InspirationUsecase) Latest(ctx context.Context) (domain.Inspiration, error) {
	return uc.repo.MostRecent(ctx)
}

func (uc *InspirationUsecase) Create(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error) {
	if insp.Quote == "" {
		return domain.Inspiration{}, fmt.Errorf("quote is required")
	}
	return uc.repo.Create(ctx, insp)
}

func (uc *InspirationUsecase) Update(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error) {
	if insp.Quote == "" {
		return domain.Inspiration{}, fmt.Errorf("quote is required")
	}
	return uc.repo.Update(ctx, insp)
}

func (uc *InspirationUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
