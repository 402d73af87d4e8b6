package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/deliciosaph/deliciosa/internal/config"
	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/infra/gateway"
	"github.com/deliciosaph/deliciosa/internal/service"
	"github.com/deliciosaph/deliciosa/internal/service/card"
	"github.com/deliciosaph/deliciosa/internal/usecase"
)

// --- mocks ---

type mockInspirationRepo struct {
	byID map[string]domain.Inspiration
}

func (m *mockInspirationRepo) GetByID(ctx context.Context, id string) (domain.Inspiration, error) {
	insp, ok := m.byID[id]
	if !ok {
		return domain.Inspiration{}, domain.NotFoundError{Resource: "inspiration"}
	}
	return insp, nil
}

func (m *mockInspirationRepo) MostRecentActive(ctx context.Context) (domain.Inspiration, error) {
	for _, insp := range m.byID {
		if insp.IsActive {
			return insp, nil
		}
	}
	return domain.Inspiration{}, domain.NotFoundError{Resource: "inspiration"}
}

func (m *mockInspirationRepo) MostRecent(ctx context.Context) (domain.Inspiration, error) {
	return m.MostRecentActive(ctx)
}

func (m *mockInspirationRepo) Create(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error) {
	return insp, nil
}

func (m *mockInspirationRepo) Update(ctx context.Context, insp domain.Inspiration) (domain.Inspiration, error) {
	return insp, nil
}

func (m *mockInspirationRepo) Delete(ctx context.Context, id string) error { return nil }

type mockInquiryRepo struct {
	created domain.Inquiry
}

func (m *mockInquiryRepo) Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	inq.ID = "inq-1"
	inq.Status = domain.InquiryStatusNew
	m.created = inq
	return inq, nil
}

func (m *mockInquiryRepo) List(ctx context.Context, status domain.InquiryStatus, page, perPage int) ([]domain.Inquiry, int64, error) {
	return nil, 0, nil
}

func (m *mockInquiryRepo) SetStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	return nil
}

func (m *mockInquiryRepo) Delete(ctx context.Context, id string) error { return nil }

type mockUserRepo struct {
	user domain.User
}

func (m *mockUserRepo) GetAdminByEmail(ctx context.Context, email string) (domain.User, error) {
	if email != m.user.Email {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return m.user, nil
}

type mockSessionRepo struct {
	live map[string]bool
}

func (m *mockSessionRepo) Store(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	m.live[sessionID] = true
	return nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, sessionID string) error {
	delete(m.live, sessionID)
	return nil
}

func (m *mockSessionRepo) IsLive(ctx context.Context, sessionID string) (bool, error) {
	return m.live[sessionID], nil
}

// --- fixtures ---

const sharePageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>{{ .Title }}</title>
{{ range .Meta.Images }}<meta property="og:image" content="{{ .URL }}">
{{ end }}</head>
<body>
{{ if .Found }}<p class="quote">{{ .Insp.Quote }}</p>{{ else }}<p>This inspiration could not be found.</p>{{ end }}
</body>
</html>`

func newTestEcho(t *testing.T, h *Handler) *echo.Echo {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "inspiration.html"), []byte(sharePageTemplate), 0644); err != nil {
		t.Fatalf("template setup failed: %v", err)
	}
	templates, err := NewTemplateRenderer(dir)
	if err != nil {
		t.Fatalf("template parse failed: %v", err)
	}

	e := echo.New()
	e.Renderer = templates
	e.Validator = NewValidator()
	h.RegisterRoutes(e)
	return e
}

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	inspirationRepo := &mockInspirationRepo{byID: map[string]domain.Inspiration{
		"abc": {
			ID:        "abc",
			Quote:     "Be still",
			Reference: "Ps 46:10",
			IsActive:  true,
		},
	}}
	userRepo := &mockUserRepo{user: domain.User{
		ID:           "user-1",
		Email:        "admin@deliciosaph.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}}
	sessionRepo := &mockSessionRepo{live: map[string]bool{}}

	auth := service.NewAuthService(config.Auth{JWTSecret: "test-secret", SessionTTL: 60}, userRepo, sessionRepo)
	fonts := gateway.NewFontGateway("")
	renderer := card.NewRenderer(fonts)

	h := NewHandler(
		usecase.NewInspirationUsecase(inspirationRepo),
		usecase.NewShareUsecase(inspirationRepo, "https://www.deliciosaph.com"),
		nil, nil, nil, nil,
		usecase.NewInquiryUsecase(&mockInquiryRepo{}, nil, nil),
		renderer,
		auth,
		nil,
		nil,
	)
	return h, newTestEcho(t, h)
}

func assertSquarePNG(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("body is not a valid png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != card.CardSize || b.Dy() != card.CardSize {
		t.Fatalf("expected %dx%d, got %dx%d", card.CardSize, card.CardSize, b.Dx(), b.Dy())
	}
}

// --- tests ---

func TestCardEndpointMissingID(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/og", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assertSquarePNG(t, rec)
}

func TestCardEndpointUnknownID(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/og?id=nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assertSquarePNG(t, rec)
}

func TestCardEndpointKnownID(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/og?id=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assertSquarePNG(t, rec)
	if rec.Header().Get("ETag") == "" {
		t.Fatalf("expected an etag on the card response")
	}
}

func TestCardEndpointDownloadVariant(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/og?id=abc&download=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assertSquarePNG(t, rec)
	if cd := rec.Header().Get(echo.HeaderContentDisposition); cd == "" {
		t.Fatalf("expected a content-disposition header on the download variant")
	}
}

func TestSharePage(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/inspiration/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !bytes.Contains([]byte(body), []byte("Be still")) {
		t.Fatalf("share page does not show the quote: %s", body)
	}
	if !bytes.Contains([]byte(body), []byte("/api/og?id=abc")) {
		t.Fatalf("share page head does not carry the card image: %s", body)
	}
}

func TestSharePageUnknownIDStill200(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/inspiration/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an unknown id, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("could not be found")) {
		t.Fatalf("expected a visible not-found state")
	}
}

func TestLoginAndAdminAccess(t *testing.T) {
	_, e := newTestHandler(t)

	payload, _ := json.Marshal(map[string]string{
		"email":    "admin@deliciosaph.com",
		"password": "correct horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil || result.Token == "" {
		t.Fatalf("no token in login response: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/inspiration", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+result.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("admin access with a valid token failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, e := newTestHandler(t)

	payload, _ := json.Marshal(map[string]string{
		"email":    "admin@deliciosaph.com",
		"password": "wrong",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRequiresToken(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/inspiration", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestSubmitInquiry(t *testing.T) {
	_, e := newTestHandler(t)

	payload, _ := json.Marshal(map[string]string{
		"name":    "Maria",
		"email":   "maria@example.com",
		"message": "Catering for 30 pax?",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitInquiryRejectsBadEmail(t *testing.T) {
	_, e := newTestHandler(t)

	payload, _ := json.Marshal(map[string]string{
		"name":    "Maria",
		"email":   "not-an-email",
		"message": "hi",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
