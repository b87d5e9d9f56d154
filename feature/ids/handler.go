package ids

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for ID generation and scanning.
type Handler struct {
	resolver Resolver
}

// NewHandler creates a new HTTP handler.
func NewHandler(resolver Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// RegisterRoutes registers the id routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ids")
	group.Get("/new", h.HandleNew)
	group.Post("/scan", h.HandleScan)
}

// HandleNew generates ?count= fresh IDs (default 1).
// @Summary Generate IDs
// @Description Generate fresh 24 character object IDs.
// @Tags ids
// @Produce json
// @Param count query int false "Number of IDs (1-1000)"
// @Success 200 {object} map[string][]string "IDs"
// @Failure 400 {object} map[string]string "Bad Count"
// @Router /ids/new [get]
func (h *Handler) HandleNew(c *fiber.Ctx) error {
	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "count must be an integer",
			})
		}
		count = n
	}

	out, err := NewN(count)
	if errors.Is(err, ErrBatchSize) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ids": out})
}

// HandleScan reports the IDs found in the request body. With ?known=true
// only resolvable IDs are returned.
// @Summary Scan Text
// @Description Find object IDs in the request body and resolve the known ones.
// @Tags ids
// @Accept plain
// @Produce json
// @Param known query bool false "Only return resolvable IDs"
// @Success 200 {object} map[string][]ids.Match "Matches"
// @Router /ids/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	matches := Scan(string(c.Body()), h.resolver)
	if c.QueryBool("known") {
		matches = Known(matches)
	}
	if matches == nil {
		matches = []Match{}
	}
	return c.JSON(fiber.Map{"matches": matches})
}
