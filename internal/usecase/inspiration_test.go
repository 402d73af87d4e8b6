package usecase

import (
	"context"
	"testing"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

func TestInspirationCreateRequiresQuote(t *testing.T) {
	uc := NewInspirationUsecase(&mockInspirationRepo{byID: map[string]domain.Inspiration{}})

	_, err := uc.Create(context.Background(), domain.Inspiration{Title: "no quote"})
	if err == nil {
		t.Fatalf("expected an error for an empty quote")
	}
}

func TestInspirationGetByIDIgnoresActiveFlag(t *testing.T) {
	repo := &mockInspirationRepo{byID: map[string]domain.Inspiration{
		"hidden": {ID: "hidden", Quote: "Be still", IsActive: false},
	}}
	uc := NewInspirationUsecase(repo)

	insp, err := uc.GetByID(context.Background(), "hidden")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if insp.ID != "hidden" {
		t.Fatalf("unexpected inspiration %+v", insp)
	}
}
