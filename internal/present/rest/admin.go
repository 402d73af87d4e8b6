package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/present/rest/presenter"
	"github.com/deliciosaph/deliciosa/internal/service"
)

func (h *Handler) registerAdminRoutes(g *echo.Group) {
	g.GET("/inspiration", h.handleLatestInspiration)
	g.POST("/inspiration", h.handleCreateInspiration)
	g.PUT("/inspiration/:id", h.handleUpdateInspiration)
	g.DELETE("/inspiration/:id", h.handleDeleteInspiration)
	g.GET("/inspiration/:id/share", h.handleShareInfo)

	g.GET("/banners", h.handleListBanners)
	g.POST("/banners", h.handleCreateBanner)
	g.PUT("/banners/:id", h.handleUpdateBanner)
	g.PUT("/banners/:id/active", h.handleSetBannerActive)
	g.DELETE("/banners/:id", h.handleDeleteBanner)

	g.GET("/menu", h.handleListMenu)
	g.POST("/menu", h.handleCreateMenuItem)
	g.PUT("/menu/:id", h.handleUpdateMenuItem)
	g.PUT("/menu/:id/available", h.handleSetMenuAvailable)
	g.DELETE("/menu/:id", h.handleDeleteMenuItem)

	g.GET("/gallery", h.handleListGallery)
	g.POST("/gallery", h.handleCreateGalleryItem)
	g.PUT("/gallery/:id", h.handleUpdateGalleryItem)
	g.DELETE("/gallery/:id", h.handleDeleteGalleryItem)

	g.GET("/packages", h.handleListPackages)
	g.POST("/packages", h.handleCreatePackage)
	g.PUT("/packages/:id", h.handleUpdatePackage)
	g.PUT("/packages/:id/active", h.handleSetPackageActive)
	g.DELETE("/packages/:id", h.handleDeletePackage)

	g.GET("/inquiries", h.handleListInquiries)
	g.PUT("/inquiries/:id/status", h.handleSetInquiryStatus)
	g.DELETE("/inquiries/:id", h.handleDeleteInquiry)

	g.POST("/uploads/:folder", h.handleUpload)
	g.DELETE("/uploads", h.handleDeleteUpload)
}

func (h *Handler) handleLogout(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, _ := ctx.Value(domain.SessionIDCtxKey).(string)
	if sessionID == "" {
		return presenter.BadRequestMessage(c, "no session")
	}
	if err := h.auth.Logout(ctx, sessionID); err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- inspiration ---

func (h *Handler) handleLatestInspiration(c echo.Context) error {
	insp, err := h.inspiration.Latest(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "no inspiration yet")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, insp)
}

type inspirationRequest struct {
	Title     string `json:"title"`
	Quote     string `json:"quote" validate:"required"`
	Reference string `json:"reference"`
	Image     string `json:"image"`
	IsActive  bool   `json:"isActive"`
}

func (h *Handler) handleCreateInspiration(c echo.Context) error {
	var req inspirationRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.inspiration.Create(c.Request().Context(), domain.Inspiration{
		Title:     req.Title,
		Quote:     req.Quote,
		Reference: req.Reference,
		Image:     req.Image,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleUpdateInspiration(c echo.Context) error {
	var req inspirationRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	updated, err := h.inspiration.Update(c.Request().Context(), domain.Inspiration{
		ID:        c.Param("id"),
		Title:     req.Title,
		Quote:     req.Quote,
		Reference: req.Reference,
		Image:     req.Image,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "inspiration not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleDeleteInspiration(c echo.Context) error {
	err := h.inspiration.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "inspiration not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- banners ---

func (h *Handler) handleListBanners(c echo.Context) error {
	page, perPage := pagination(c)
	banners, total, err := h.banner.List(c.Request().Context(), page, perPage)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Paginated(c, banners, total, page, perPage)
}

type bannerRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required"`
	LinkURL     string `json:"linkUrl"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

func (r bannerRequest) toDomain(id string) domain.Banner {
	return domain.Banner{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		LinkURL:     r.LinkURL,
		Order:       r.Order,
		IsActive:    r.IsActive,
	}
}

func (h *Handler) handleCreateBanner(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.banner.Create(c.Request().Context(), req.toDomain(""))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleUpdateBanner(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	updated, err := h.banner.Update(c.Request().Context(), req.toDomain(c.Param("id")))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "banner not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, updated)
}

type activeRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) handleSetBannerActive(c echo.Context) error {
	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	err := h.banner.SetActive(c.Request().Context(), c.Param("id"), req.Active)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "banner not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleDeleteBanner(c echo.Context) error {
	err := h.banner.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "banner not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- menu ---

func (h *Handler) handleListMenu(c echo.Context) error {
	page, perPage := pagination(c)
	category := domain.MenuCategory(c.QueryParam("category"))

	items, total, err := h.menu.List(c.Request().Context(), category, page, perPage)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.Paginated(c, items, total, page, perPage)
}

type menuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image"`
	IsAvailable bool    `json:"isAvailable"`
}

func (r menuItemRequest) toDomain(id string) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    domain.MenuCategory(r.Category),
		Image:       r.Image,
		IsAvailable: r.IsAvailable,
	}
}

func (h *Handler) handleCreateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.menu.Create(c.Request().Context(), req.toDomain(""))
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleUpdateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	updated, err := h.menu.Update(c.Request().Context(), req.toDomain(c.Param("id")))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "menu item not found")
		}
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, updated)
}

type availableRequest struct {
	Available bool `json:"available"`
}

func (h *Handler) handleSetMenuAvailable(c echo.Context) error {
	var req availableRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	err := h.menu.SetAvailable(c.Request().Context(), c.Param("id"), req.Available)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "menu item not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleDeleteMenuItem(c echo.Context) error {
	err := h.menu.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "menu item not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- gallery ---

func (h *Handler) handleListGallery(c echo.Context) error {
	page, perPage := pagination(c)
	category := domain.GalleryCategory(c.QueryParam("category"))

	items, total, err := h.gallery.List(c.Request().Context(), category, page, perPage)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.Paginated(c, items, total, page, perPage)
}

type galleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

func (r galleryItemRequest) toDomain(id string) domain.GalleryItem {
	return domain.GalleryItem{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Category:    domain.GalleryCategory(r.Category),
	}
}

func (h *Handler) handleCreateGalleryItem(c echo.Context) error {
	var req galleryItemRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.gallery.Create(c.Request().Context(), req.toDomain(""))
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleUpdateGalleryItem(c echo.Context) error {
	var req galleryItemRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	updated, err := h.gallery.Update(c.Request().Context(), req.toDomain(c.Param("id")))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "gallery item not found")
		}
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleDeleteGalleryItem(c echo.Context) error {
	err := h.gallery.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "gallery item not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- packages ---

func (h *Handler) handleListPackages(c echo.Context) error {
	page, perPage := pagination(c)
	packages, total, err := h.pkg.List(c.Request().Context(), page, perPage)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Paginated(c, packages, total, page, perPage)
}

type packageRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
	Inclusions  []string `json:"inclusions"`
	IsActive    bool     `json:"isActive"`
}

func (r packageRequest) toDomain(id string) domain.Package {
	return domain.Package{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    domain.PackageCategory(r.Category),
		Image:       r.Image,
		Inclusions:  r.Inclusions,
		IsActive:    r.IsActive,
	}
}

func (h *Handler) handleCreatePackage(c echo.Context) error {
	var req packageRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.pkg.Create(c.Request().Context(), req.toDomain(""))
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleUpdatePackage(c echo.Context) error {
	var req packageRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	updated, err := h.pkg.Update(c.Request().Context(), req.toDomain(c.Param("id")))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "package not found")
		}
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleSetPackageActive(c echo.Context) error {
	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	err := h.pkg.SetActive(c.Request().Context(), c.Param("id"), req.Active)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "package not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleDeletePackage(c echo.Context) error {
	err := h.pkg.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "package not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- inquiries ---

func (h *Handler) handleListInquiries(c echo.Context) error {
	page, perPage := pagination(c)

	status := domain.InquiryStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return presenter.BadRequestMessage(c, "unknown inquiry status")
	}

	inquiries, total, err := h.inquiry.List(c.Request().Context(), status, page, perPage)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Paginated(c, inquiries, total, page, perPage)
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) handleSetInquiryStatus(c echo.Context) error {
	var req inquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	status := domain.InquiryStatus(req.Status)
	if !status.Valid() {
		return presenter.BadRequestMessage(c, "unknown inquiry status")
	}

	err := h.inquiry.SetStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "inquiry not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleDeleteInquiry(c echo.Context) error {
	err := h.inquiry.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "inquiry not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- uploads ---

func (h *Handler) handleUpload(c echo.Context) error {
	ctx := c.Request().Context()

	folder := c.Param("folder")
	if !domain.KnownFolder(folder) {
		return presenter.BadRequestMessage(c, "unknown upload folder")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenter.BadRequestMessage(c, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenter.InternalError(c, err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	publicURL, err := h.storage.Upload(ctx, folder, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.Created(c, echo.Map{"url": publicURL})
}

type deleteUploadRequest struct {
	URL string `json:"url" validate:"required"`
}

func (h *Handler) handleDeleteUpload(c echo.Context) error {
	var req deleteUploadRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if err := h.storage.Delete(c.Request().Context(), req.URL); err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- realtime ---

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime streams admin events (new inquiries) to an authenticated
// editor session over a websocket.
func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	ctx := c.Request().Context()

	output := make(chan domain.Event)
	go h.signal.Subscribe(ctx, service.AdminChannel, output)

	quit := make(chan struct{})

	go func() {
		for {
			// The admin feed is one-way; reads only service close frames
			// and heartbeats.
			_, _, err := ws.ReadMessage()
			if err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				quit <- struct{}{}
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
