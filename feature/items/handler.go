package items

import (
	"errors"
	"net/url"
	"sort"

	"sptid/core/language"
	"sptid/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for item lookups.
type Handler struct {
	service   *Service
	rescanner Rescanner
}

// NewHandler creates a new HTTP handler. rescanner may be nil.
func NewHandler(service *Service, rescanner Rescanner) *Handler {
	return &Handler{service: service, rescanner: rescanner}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/", h.HandleListItems)
	group.Get("/:id", h.HandleGetItem)
	group.Get("/:id/text", h.HandleDescribeItem)

	app.Get("/translations/:key", h.HandleTranslate)
	app.Put("/language/:code", h.HandleSwitchLanguage)
	app.Post("/overrides/rescan", h.HandleRescan)
	app.Get("/diagnostics", h.HandleDiagnostics)
}

// HandleGetItem returns the resolved record for an ID.
// @Summary Resolve Item
// @Description Resolve an object ID against the custom layer, then the generated table.
// @Tags items
// @Produce json
// @Param id path string true "Object ID (24 hex characters)"
// @Success 200 {object} models.ItemRecord "Item Record"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Router /items/{id} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, ok := h.service.Lookup(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown id " + id,
		})
	}
	return c.JSON(rec)
}

// HandleDescribeItem returns the record rendered as plain text.
// @Summary Describe Item
// @Description Render an item record as plain text with translated labels.
// @Tags items
// @Produce plain
// @Param id path string true "Object ID (24 hex characters)"
// @Success 200 {string} string "Description"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Router /items/{id}/text [get]
func (h *Handler) HandleDescribeItem(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, ok := h.service.Lookup(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown id " + id,
		})
	}
	return c.SendString(Describe(rec, h.service.Translate))
}

// HandleListItems returns every known ID, sorted.
// @Summary List Known IDs
// @Description List every ID resolvable in the active language, sorted.
// @Tags items
// @Produce json
// @Success 200 {object} map[string]interface{} "Language and IDs"
// @Router /items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	known := h.service.ListKnownIDs()
	ids := make([]string, 0, len(known))
	for id := range known {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return c.JSON(fiber.Map{
		"language": h.service.Language(),
		"ids":      ids,
	})
}

// HandleTranslate returns the UI label for a key.
// @Summary Translate Label
// @Description Translate a UI label key; unknown keys are returned unchanged.
// @Tags items
// @Produce json
// @Param key path string true "Label key"
// @Success 200 {object} map[string]string "Key and Value"
// @Router /translations/{key} [get]
func (h *Handler) HandleTranslate(c *fiber.Ctx) error {
	key := c.Params("key")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	return c.JSON(fiber.Map{
		"key":   key,
		"value": h.service.Translate(key),
	})
}

// HandleSwitchLanguage changes the active language.
// @Summary Switch Language
// @Description Load another language and rebuild the workspace overrides for it.
// @Tags items
// @Produce json
// @Param code path string true "Language code (e.g. 'fr')"
// @Success 200 {object} items.Stats "Resolver Stats"
// @Failure 400 {object} map[string]interface{} "Unsupported Language"
// @Router /language/{code} [put]
func (h *Handler) HandleSwitchLanguage(c *fiber.Ctx) error {
	// Params are backed by the pooled request buffer and the code outlives
	// the request.
	code := utils.CopyString(c.Params("code"))
	l := logger.WithRayID(h.service.logger, c)

	if err := SwitchLanguage(c.Context(), h.service, h.rescanner, code); err != nil {
		if errors.Is(err, language.ErrUnsupported) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":     err.Error(),
				"supported": language.Codes(),
			})
		}
		l.Error("Language switch failed", zap.String("language", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Switched language", zap.String("language", code))
	return c.JSON(h.service.Stats())
}

// HandleRescan forces a workspace rescan.
// @Summary Rescan Overrides
// @Description Rebuild the custom layer from every override file in the workspace.
// @Tags overrides
// @Produce json
// @Success 200 {object} overrides.Result "Rescan Result"
// @Failure 404 {object} map[string]string "No Workspace"
// @Router /overrides/rescan [post]
func (h *Handler) HandleRescan(c *fiber.Ctx) error {
	if h.rescanner == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no workspace attached",
		})
	}
	res := h.rescanner.Rescan(c.Context())
	logger.WithRayID(h.service.logger, c).Info("Forced rescan",
		zap.Int("files", res.Files),
		zap.Int("items", res.Items),
	)
	return c.JSON(res)
}

// HandleDiagnostics returns the service counters.
// @Summary Diagnostics
// @Description Report the active language and layer sizes.
// @Tags items
// @Produce json
// @Success 200 {object} items.Stats "Resolver Stats"
// @Router /diagnostics [get]
func (h *Handler) HandleDiagnostics(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
