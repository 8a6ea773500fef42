package api

import (
	"errors"
	"net/http"

	resdto "card-tracker/internal/handler/dto/response"
	"card-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	statusTypeSubmission  = "submission"
	statusTypeCardRequest = "cardRequest"
)

// StatusHandler serves the public "where does my application stand"
// lookup. Callers hold the id they got back at creation time plus the
// record type; nothing else about the record is exposed.
type StatusHandler struct {
	submissionQueries  queries.SubmissionQueries
	cardRequestQueries queries.CardRequestQueries
}

func NewStatusHandler(submissionQueries queries.SubmissionQueries, cardRequestQueries queries.CardRequestQueries) *StatusHandler {
	return &StatusHandler{
		submissionQueries:  submissionQueries,
		cardRequestQueries: cardRequestQueries,
	}
}

// @Summary Check application status
// @Description Look up the status of a submission or card request by ID
// @Tags status
// @Produce json
// @Param id path string true "Record ID"
// @Param type query string true "Record type (submission or cardRequest)"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /status/{id} [get]
func (h *StatusHandler) Lookup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return
	}

	switch c.Query("type") {
	case statusTypeSubmission:
		view, err := h.submissionQueries.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, queries.ErrSubmissionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "Submission not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.StatusResponse{ID: view.ID, Type: statusTypeSubmission, Status: view.Status})

	case statusTypeCardRequest:
		view, err := h.cardRequestQueries.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, queries.ErrCardRequestNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "Card request not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.StatusResponse{ID: view.ID, Type: statusTypeCardRequest, Status: view.Status})

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid type parameter",
		})
	}
}
