package api

import (
	"net/http"
	"strconv"

	resdto "card-tracker/internal/handler/dto/response"
	"card-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventQueries queries.EventQueries
}

func NewEventHandler(eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{eventQueries: eventQueries}
}

// @Summary List recent events
// @Description List the most recent audit events, newest first
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/events [get]
func (h *EventHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	views, err := h.eventQueries.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}
