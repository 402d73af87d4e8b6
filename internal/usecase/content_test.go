package usecase

import (
	"context"
	"testing"

	"github.com/deliciosaph/deliciosa/internal/domain"
)

type mockMenuRepo struct {
	listedCategory domain.MenuCategory
}

func (m *mockMenuRepo) ListAvailable(ctx context.Context, category domain.MenuCategory) ([]domain.MenuItem, error) {
	m.listedCategory = category
	return []domain.MenuItem{{Name: "Spanish Latte"}}, nil
}

func (m *mockMenuRepo) List(ctx context.Context, category domain.MenuCategory, page, perPage int) ([]domain.MenuItem, int64, error) {
	return nil, 0, nil
}

func (m *mockMenuRepo) GetByID(ctx context.Context, id string) (domain.MenuItem, error) {
	return domain.MenuItem{}, domain.NotFoundError{Resource: "menu item"}
}

func (m *mockMenuRepo) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	return item, nil
}

func (m *mockMenuRepo) Update(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	return item, nil
}

func (m *mockMenuRepo) SetAvailable(ctx context.Context, id string, available bool) error { return nil }
func (m *mockMenuRepo) Delete(ctx context.Context, id string) error                       { return nil }

func TestMenuListAvailableRejectsUnknownCategory(t *testing.T) {
	uc := NewMenuUsecase(&mockMenuRepo{})

	_, err := uc.ListAvailable(context.Background(), domain.MenuCategory("smoothies"))
	if err == nil {
		t.Fatalf("expected an error for an unknown category")
	}
}

func TestMenuListAvailableAllowsEmptyCategory(t *testing.T) {
	repo := &mockMenuRepo{}
	uc := NewMenuUsecase(repo)

	items, err := uc.ListAvailable(context.Background(), "")
	if err != nil {
		t.Fatalf("empty category should list everything: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
}

func TestMenuCreateValidatesCategory(t *testing.T) {
	uc := NewMenuUsecase(&mockMenuRepo{})

	_, err := uc.Create(context.Background(), domain.MenuItem{
		Name:     "Spanish Latte",
		Category: domain.MenuCategory("smoothies"),
	})
	if err == nil {
		t.Fatalf("expected an error for an unknown category")
	}

	_, err = uc.Create(context.Background(), domain.MenuItem{
		Name:     "Spanish Latte",
		Category: domain.MenuCategoryCoffee,
	})
	if err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
}

type mockPackageRepo struct{}

func (m *mockPackageRepo) ListActive(ctx context.Context) ([]domain.Package, error) {
	return nil, nil
}

func (m *mockPackageRepo) List(ctx context.Context, page, perPage int) ([]domain.Package, int64, error) {
	return nil, 0, nil
}

func (m *mockPackageRepo) GetByID(ctx context.Context, id string) (domain.Package, error) {
	return domain.Package{}, domain.NotFoundError{Resource: "package"}
}

func (m *mockPackageRepo) Create(ctx context.Context, p domain.Package) (domain.Package, error) {
	return p, nil
}

func (m *mockPackageRepo) Update(ctx context.Context, p domain.Package) (domain.Package, error) {
	return p, nil
}

func (m *mockPackageRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }
func (m *mockPackageRepo) Delete(ctx context.Context, id string) error                 { return nil }

func TestPackageCreateAllowsNilPrice(t *testing.T) {
	uc := NewPackageUsecase(&mockPackageRepo{})

	created, err := uc.Create(context.Background(), domain.Package{
		Name:     "Coffee Cart",
		Category: domain.PackageCategoryCoffeeCart,
	})
	if err != nil {
		t.Fatalf("price-on-request package rejected: %v", err)
	}
	if created.Price != nil {
		t.Fatalf("expected nil price to survive, got %v", *created.Price)
	}
}
