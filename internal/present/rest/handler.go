package rest

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deliciosaph/deliciosa/internal/domain"
	restmiddleware "github.com/deliciosaph/deliciosa/internal/present/rest/middleware"
	"github.com/deliciosaph/deliciosa/internal/present/rest/presenter"
	"github.com/deliciosaph/deliciosa/internal/service"
	"github.com/deliciosaph/deliciosa/internal/service/card"
	"github.com/deliciosaph/deliciosa/internal/usecase"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// StorageGateway is the slice of the object store the admin surface needs.
type StorageGateway interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

type Handler struct {
	inspiration *usecase.InspirationUsecase
	share       *usecase.ShareUsecase
	banner      *usecase.BannerUsecase
	menu        *usecase.MenuUsecase
	gallery     *usecase.GalleryUsecase
	pkg         *usecase.PackageUsecase
	inquiry     *usecase.InquiryUsecase
	renderer    *card.Renderer
	auth        *service.AuthService
	signal      *service.SignalService
	storage     StorageGateway
}

func NewHandler(
	inspiration *usecase.InspirationUsecase,
	share *usecase.ShareUsecase,
	banner *usecase.BannerUsecase,
	menu *usecase.MenuUsecase,
	gallery *usecase.GalleryUsecase,
	pkg *usecase.PackageUsecase,
	inquiry *usecase.InquiryUsecase,
	renderer *card.Renderer,
	auth *service.AuthService,
	signal *service.SignalService,
	storage StorageGateway,
) *Handler {
	return &Handler{
		inspiration: inspiration,
		share:       share,
		banner:      banner,
		menu:        menu,
		gallery:     gallery,
		pkg:         pkg,
		inquiry:     inquiry,
		renderer:    renderer,
		auth:        auth,
		signal:      signal,
		storage:     storage,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/og", h.handleCard)
	e.GET("/inspiration/:id", h.handleSharePage)

	e.GET("/api/v1/inspiration", h.handleCurrentInspiration)
	e.GET("/api/v1/banners", h.handleActiveBanners)
	e.GET("/api/v1/menu", h.handleMenu)
	e.GET("/api/v1/gallery", h.handleGallery)
	e.GET("/api/v1/packages", h.handleActivePackages)
	e.POST("/api/v1/inquiries", h.handleSubmitInquiry)
	e.POST("/api/v1/auth/login", h.handleLogin)

	authmw := restmiddleware.NewAuthMiddleware(h.auth)
	e.POST("/api/v1/auth/logout", h.handleLogout, authmw.RequireAdmin)

	admin := e.Group("/api/v1/admin", authmw.RequireAdmin)
	h.registerAdminRoutes(admin)

	e.GET("/realtime", h.handleRealtime, authmw.RequireAdmin)
}

func (h *Handler) handleCurrentInspiration(c echo.Context) error {
	ctx := c.Request().Context()

	insp, err := h.inspiration.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "no active inspiration")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, insp)
}

func (h *Handler) handleActiveBanners(c echo.Context) error {
	banners, err := h.banner.ListActive(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, banners)
}

func (h *Handler) handleMenu(c echo.Context) error {
	category := domain.MenuCategory(c.QueryParam("category"))
	items, err := h.menu.ListAvailable(c.Request().Context(), category)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, items)
}

func (h *Handler) handleGallery(c echo.Context) error {
	category := domain.GalleryCategory(c.QueryParam("category"))
	page, perPage := pagination(c)

	items, total, err := h.gallery.List(c.Request().Context(), category, page, perPage)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.Paginated(c, items, total, page, perPage)
}

func (h *Handler) handleActivePackages(c echo.Context) error {
	packages, err := h.pkg.ListActive(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, packages)
}

type inquiryRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate"`
	Message   string `json:"message" validate:"required"`
}

func (h *Handler) handleSubmitInquiry(c echo.Context) error {
	ctx := c.Request().Context()

	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.inquiry.Submit(ctx, domain.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventDate: req.EventDate,
		Message:   req.Message,
	})
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Created(c, created)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	result, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return presenter.Unauthorized(c, "invalid credentials")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, result)
}

func pagination(c echo.Context) (int, int) {
	page := 1
	if s := c.QueryParam("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			page = n
		}
	}

	perPage := defaultPerPage
	if s := c.QueryParam("perPage"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			perPage = n
		}
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
