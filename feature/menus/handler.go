package menus

import (
	"errors"
	"io"
	"path"
	"strconv"
	"strings"

	"menu-manager/core/logger"
	"menu-manager/core/reconcile"
	"menu-manager/core/utils"
	"menu-manager/feature/menus/models"
	"menu-manager/feature/menus/stock"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// Handler handles HTTP requests for menus.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the menu routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/menus")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/admin", h.HandleFilter(models.ViewAdmin))
	group.Get("/public", h.HandleFilter(models.ViewPublic))
	group.Get("/autocomplete", h.HandleAutoComplete)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/:id/availability", h.HandleAvailability)
	group.Post("/:id/stock", h.HandleStock)
	group.Put("/:id/photo", h.HandleUploadPhoto)
	group.Get("/:id/photo", h.HandleGetPhoto)
}

// HandleList returns the front-end menu listing.
// @Summary List Menus
// @Description List enabled menus for the front-end, paginated and sorted by priority.
// @Tags menus
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Param sort query string false "menu_priority asc|desc"
// @Param category query string false "Category slug"
// @Param group query string false "Set to 'category' to keep categorized menus only"
// @Success 200 {object} models.Page[models.MenuRow]
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	page, err := h.service.List(c.Context(), ListOptions{
		Page:      c.QueryInt("page", 1),
		PageLimit: c.QueryInt("limit", 0),
		Sort:      c.Query("sort"),
		Category:  c.Query("category"),
		Group:     c.Query("group"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(page)
}

// HandleFilter returns a filtered listing in the given view.
// @Summary Filter Menus
// @Description Admin view supports search and status filters and exposes stock fields.
// @Tags menus
// @Produce json
// @Param search query string false "Search in name, price and stock (admin)"
// @Param status query bool false "Filter on menu status (admin)"
// @Param category_id query int false "Category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.Page[models.MenuRow]
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /menus/admin [get]
// @Router /menus/public [get]
func (h *Handler) HandleFilter(view models.View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts := FilterOptions{
			View:       view,
			Search:     c.Query("search"),
			CategoryID: uint(max(c.QueryInt("category_id", 0), 0)),
			Page:       c.QueryInt("page", 1),
			PageLimit:  c.QueryInt("limit", 0),
		}
		if raw := c.Query("status"); raw != "" {
			status, err := strconv.ParseBool(raw)
			if err != nil {
				return badRequest(c, "invalid status")
			}
			opts.Status = &status
		}

		page, err := h.service.Filter(c.Context(), opts)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(page)
	}
}

// HandleAutoComplete returns menu suggestions.
// @Summary Auto-complete Menus
// @Tags menus
// @Produce json
// @Param term query string true "Search term"
// @Param limit query int false "Maximum suggestions"
// @Success 200 {array} models.Suggestion
// @Router /menus/autocomplete [get]
func (h *Handler) HandleAutoComplete(c *fiber.Ctx) error {
	out, err := h.service.AutoComplete(c.Context(), c.Query("term"), c.QueryInt("limit", 0))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// HandleGet returns a single menu with its relations.
// @Summary Get Menu
// @Tags menus
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Menu
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}
	menu, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(menu)
}

// HandleCreate creates a menu and its nested collections.
// @Summary Create Menu
// @Tags menus
// @Accept json
// @Produce json
// @Param menu body MenuRequest true "Menu"
// @Success 201 {object} SaveResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /menus [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	req, err := bindMenu(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	menu := &models.Menu{}
	req.Apply(menu)
	res, err := h.service.Save(c.Context(), menu, req.Snapshot())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleUpdate replaces a menu and reconciles the supplied nested collections.
// @Summary Update Menu
// @Tags menus
// @Accept json
// @Produce json
// @Param id path int true "Menu ID"
// @Param menu body MenuRequest true "Menu"
// @Success 200 {object} SaveResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}
	req, err := bindMenu(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	menu, err := h.service.find(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	req.Apply(menu)
	res, err := h.service.Save(c.Context(), menu, req.Snapshot())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleDelete deletes a menu.
// @Summary Delete Menu
// @Tags menus
// @Param id path int true "Menu ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAvailability reports whether the special and mealtime of a menu are active now.
// @Summary Menu Availability
// @Tags menus
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Availability
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id}/availability [get]
func (h *Handler) HandleAvailability(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}
	out, err := h.service.Availability(c.Context(), id, h.service.opts.Now())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// HandleStock adjusts the stock of a menu.
// @Summary Adjust Stock
// @Description Subtract (sale) or add (refund) stock. Menus that do not track stock decline the change.
// @Tags menus
// @Accept json
// @Produce json
// @Param id path int true "Menu ID"
// @Param body body StockRequest true "Adjustment"
// @Success 200 {object} StockResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id}/stock [post]
func (h *Handler) HandleStock(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}

	var req StockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}
	dir, err := stock.ParseDirection(req.Action)
	if err != nil {
		return badRequest(c, err.Error())
	}

	menu, applied, err := h.service.AdjustStockByID(c.Context(), id, req.Quantity, dir)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(StockResponse{MenuID: menu.ID, Applied: applied, StockQty: menu.StockQty})
}

// HandleUploadPhoto stores the photo of a menu.
// @Summary Upload Menu Photo
// @Tags menus
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu ID"
// @Param photo formData file true "Photo"
// @Success 200 {object} models.Menu
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id}/photo [put]
func (h *Handler) HandleUploadPhoto(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c, "photo file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()

	menu, err := h.service.UploadPhoto(c.Context(), id, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(menu)
}

// HandleGetPhoto streams the photo of a menu.
// @Summary Get Menu Photo
// @Tags menus
// @Produce octet-stream
// @Param id path int true "Menu ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not Found"
// @Router /menus/{id}/photo [get]
func (h *Handler) HandleGetPhoto(c *fiber.Ctx) error {
	id, ok := menuID(c)
	if !ok {
		return badRequest(c, "invalid menu id")
	}

	obj, key, err := h.service.Photo(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return h.fail(c, err)
	}
	ext := strings.TrimPrefix(path.Ext(key), ".")
	if ext == "" {
		ext = "bin"
	}
	c.Type(ext)
	return c.Send(data)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrMenuNotFound), errors.Is(err, ErrPhotoNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidPhotoName), errors.Is(err, reconcile.ErrNoParent):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrPhotosDisabled):
		status = fiber.StatusServiceUnavailable
	default:
		logger.WithRayID(h.service.logger, c).Error("Menu request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func menuID(c *fiber.Ctx) (uint, bool) {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func bindMenu(c *fiber.Ctx) (*MenuRequest, error) {
	var req MenuRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
