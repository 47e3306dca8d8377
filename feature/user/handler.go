package user

import (
	"errors"

	"auction-manager/core/logger"
	"auction-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// saveUserRequest is the payload for create and update calls. Companies is
// the complete desired membership list.
type saveUserRequest struct {
	UserFields
	Companies []MembershipInput `json:"companies"`
}

// HandleCreate creates a user together with their company memberships.
// @Summary Create User
// @Tags users
// @Accept json
// @Produce json
// @Param request body saveUserRequest true "User with membership list"
// @Success 200 {object} reconcile.Result "Created user id"
// @Failure 400 {object} reconcile.Result "Malformed payload"
// @Failure 500 {object} reconcile.Result "Reconciliation failed"
// @Router /users [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req saveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	id, err := h.service.Create(c.Context(), req.UserFields, req.Companies)
	if err != nil {
		l.Error("User create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(reconcile.OK(fiber.Map{"id": id}))
}

// HandleUpdate reconciles a user and their membership list.
// @Summary Update User
// @Description Update user fields and reconcile company memberships against the submitted desired state. At most one membership may end up primary.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body saveUserRequest true "Desired final state"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} reconcile.Result "Malformed payload"
// @Failure 500 {object} reconcile.Result "Reconciliation failed"
// @Router /users/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	var req saveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	if err := h.service.Update(c.Context(), int64(id), req.UserFields, req.Companies); err != nil {
		l.Error("User update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(reconcile.OK(nil))
}

// HandleDelete removes a user and all their memberships.
// @Summary Delete User
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} reconcile.Result
// @Failure 500 {object} reconcile.Result
// @Router /users/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		l.Error("User delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(reconcile.OK(nil))
}

// HandleGet returns one user with their memberships.
// @Summary Get User
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Detail
// @Failure 404 {object} reconcile.Result
// @Router /users/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	detail, err := h.service.Get(c.Context(), int64(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(reconcile.Normalize(nil, err))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(detail)
}
