package auction

import (
	"errors"

	"auction-manager/core/logger"
	"auction-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for auctions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the auction routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auctions")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	if h.service.archiver != nil {
		group.Get("/archives", h.HandleListArchives)
		group.Get("/:id/archive", h.HandleGetArchive)
	}
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// saveAuctionRequest is the payload for create and update calls. The child
// lists are complete desired states, not deltas: an empty list deletes all
// rows of that collection.
type saveAuctionRequest struct {
	AuctionFields
	Participants []ParticipantInput `json:"participants"`
	Items        []ItemInput        `json:"items"`
}

// HandleCreate creates an auction together with its child collections.
// @Summary Create Auction
// @Description Create an auction with its participant and item lists in one transaction.
// @Tags auctions
// @Accept json
// @Produce json
// @Param request body saveAuctionRequest true "Auction with child collections"
// @Success 200 {object} reconcile.Result "Created auction id"
// @Failure 400 {object} reconcile.Result "Malformed payload"
// @Failure 500 {object} reconcile.Result "Reconciliation failed"
// @Router /auctions [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req saveAuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	id, err := h.service.Create(c.Context(), req.AuctionFields, req.Participants, req.Items)
	if err != nil {
		l.Error("Auction create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(reconcile.OK(fiber.Map{"id": id}))
}

// HandleUpdate reconciles an auction and its child collections.
// @Summary Update Auction
// @Description Update auction fields and reconcile participants and items against the submitted desired state.
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path int true "Auction ID"
// @Param request body saveAuctionRequest true "Desired final state"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} reconcile.Result "Malformed payload"
// @Failure 500 {object} reconcile.Result "Reconciliation failed"
// @Router /auctions/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	var req saveAuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	if err := h.service.Update(c.Context(), int64(id), req.AuctionFields, req.Participants, req.Items); err != nil {
		l.Error("Auction update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(reconcile.OK(nil))
}

// HandleDelete removes an auction and all its children.
// @Summary Delete Auction
// @Description Cascade-delete an auction (archiving a snapshot first when storage is configured). Pass soft=true to only mark it deleted.
// @Tags auctions
// @Produce json
// @Param id path int true "Auction ID"
// @Param soft query bool false "Soft delete (keep rows, mark inactive)"
// @Success 200 {object} reconcile.Result
// @Failure 500 {object} reconcile.Result
// @Router /auctions/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	if c.QueryBool("soft") {
		err = h.service.SoftDelete(c.Context(), int64(id))
	} else {
		err = h.service.Delete(c.Context(), int64(id))
	}
	if err != nil {
		l.Error("Auction delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}

	return c.JSON(reconcile.OK(nil))
}

// HandleGet returns one auction with its child collections.
// @Summary Get Auction
// @Tags auctions
// @Produce json
// @Param id path int true "Auction ID"
// @Success 200 {object} Detail
// @Failure 404 {object} reconcile.Result
// @Router /auctions/{id} [get]
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

// HandleList returns all non-deleted auctions.
// @Summary List Auctions
// @Tags auctions
// @Produce json
// @Success 200 {array} models.Auction
// @Router /auctions [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	auctions, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}
	return c.JSON(auctions)
}

// HandleListArchives returns the stored deletion snapshots.
// @Summary List Auction Archives
// @Tags auctions
// @Produce json
// @Success 200 {array} string
// @Router /auctions/archives [get]
func (h *Handler) HandleListArchives(c *fiber.Ctx) error {
	names, err := h.service.archiver.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}
	return c.JSON(names)
}

// HandleGetArchive returns the deletion snapshot of one auction.
// @Summary Get Auction Archive
// @Tags auctions
// @Produce json
// @Param id path int true "Auction ID"
// @Success 200 {object} Snapshot
// @Failure 500 {object} reconcile.Result
// @Router /auctions/{id}/archive [get]
func (h *Handler) HandleGetArchive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(reconcile.Normalize(nil, err))
	}

	snap, err := h.service.archiver.Fetch(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(reconcile.Normalize(nil, err))
	}
	return c.JSON(snap)
}
