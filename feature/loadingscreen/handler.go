package loadingscreen

import (
	"errors"

	"loadscreen-export/core/logger"
	"loadscreen-export/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for loading screens.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the loading screen routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/loadingscreens")
	group.Get("/", h.HandleDocument)
	group.Get("/plan", h.HandlePlan)
	group.Post("/export", h.HandleExport)
	group.Get("/:id", h.HandleGetByID)

	app.Static("/images", h.service.ImageDir(), fiber.Static{ByteRange: true})
}

// HandleDocument returns the public document.
// @Summary List Loading Screens
// @Description Name and image file of every exported loading screen.
// @Tags loadingscreens
// @Produce json
// @Success 200 {object} records.Document "Document"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /loadingscreens [get]
func (h *Handler) HandleDocument(c *fiber.Ctx) error {
	doc, err := h.service.Document(c.Context())
	if err != nil {
		logger.WithRayID(h.service.Logger(), c).Error("Loading records failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// HandleGetByID returns the stored records of one item.
// @Summary Get Loading Screen
// @Description Records of one loading screen item, oldest first.
// @Tags loadingscreens
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {array} reconcile.Record "Records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /loadingscreens/{id} [get]
func (h *Handler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id must be a number"})
	}

	recs, err := h.service.RecordsByID(c.Context(), id)
	if err != nil {
		logger.WithRayID(h.service.Logger(), c).Error("Loading records failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(recs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "loading screen not exported"})
	}
	return c.JSON(recs)
}

// HandlePlan returns what the next export would do.
// @Summary Export Plan
// @Description Classifies every loading screen against the archive and the stored records without writing anything.
// @Tags loadingscreens
// @Produce json
// @Param refresh query boolean false "Ignore the cached plan"
// @Success 200 {object} reconcile.Plan "Plan"
// @Failure 409 {object} map[string]string "Ambiguous asset match"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /loadingscreens/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.Logger(), c)

	plan, err := h.service.Plan(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		l.Error("Planning failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, reconcile.ErrAmbiguous) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// HandleExport runs an export and returns its report.
// @Summary Run Export
// @Description Exports new and changed loading screens. Partial failures still return the report.
// @Tags loadingscreens
// @Produce json
// @Param dry query boolean false "Plan only"
// @Success 200 {object} Report "Report"
// @Failure 409 {object} map[string]string "Export already running"
// @Failure 500 {object} map[string]interface{} "Report with error"
// @Router /loadingscreens/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.Logger(), c)
	l.Info("Export triggered")

	report, err := h.service.Run(c.UserContext(), RunOptions{DryRun: c.QueryBool("dry")})
	switch {
	case errors.Is(err, ErrRunInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}
	return c.JSON(report)
}
