package api

import (
	"errors"
	"fmt"
	"net/http"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/domain/submission"
	reqdto "card-tracker/internal/handler/dto/request"
	resdto "card-tracker/internal/handler/dto/response"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	submissionCommands commands.SubmissionCommands
	submissionQueries  queries.SubmissionQueries
	clock              clock.Clock
}

func NewSubmissionHandler(submissionCommands commands.SubmissionCommands, submissionQueries queries.SubmissionQueries, clk clock.Clock) *SubmissionHandler {
	return &SubmissionHandler{
		submissionCommands: submissionCommands,
		submissionQueries:  submissionQueries,
		clock:              clk,
	}
}

// @Summary Create submission
// @Description Submit an assignment against a card resolved from a QR token
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSubmissionRequest true "Submission request"
// @Success 201 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req reqdto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.submissionCommands.Submit(c.Request.Context(), commands.SubmitSubmissionInput{
		QRToken:    req.QRToken,
		Class:      req.Class,
		Assignment: req.AssignmentType,
		Requested:  req.Amount,
		PromoCode:  req.PromoCode,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
			})
		case errors.Is(err, card.ErrCardRevoked):
			c.JSON(http.StatusGone, gin.H{
				"error": "Card has been revoked",
			})
		case errors.Is(err, card.ErrCardExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Card has expired",
			})
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promo code not found",
			})
		case errors.Is(err, coupon.ErrExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Promo code has no remaining uses",
			})
		case errors.Is(err, submission.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Requested amount exceeds card balance",
			})
		case errors.Is(err, submission.ErrMissingContact),
			errors.Is(err, submission.ErrEmptyClass),
			errors.Is(err, submission.ErrEmptyAssignmentType),
			errors.Is(err, submission.ErrInvalidAmount):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.submissionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmissionView(view))
}

// @Summary List submissions
// @Description List submissions, newest first, optionally filtered by status
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, approved, denied)"
// @Success 200 {array} resdto.SubmissionResponse
// @Failure 401 {object} map[string]string
// @Router /admin/submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	views, err := h.submissionQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmissionViews(views))
}

// @Summary Approve submission
// @Description Approve a pending submission and debit the card balance
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/submissions/{id}/approve [post]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid submission ID format",
		})
		return
	}

	if err := h.submissionCommands.Approve(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Submission not found",
			})
		case errors.Is(err, commands.ErrSubmissionAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Submission has already been processed",
			})
		case errors.Is(err, submission.ErrInsufficientBalance):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Card balance no longer covers this submission",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deny submission
// @Description Deny a pending submission without touching the card balance
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/submissions/{id}/deny [post]
func (h *SubmissionHandler) Deny(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid submission ID format",
		})
		return
	}

	if err := h.submissionCommands.Deny(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Submission not found",
			})
		case errors.Is(err, commands.ErrSubmissionAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Submission has already been processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Export submissions CSV
// @Description Download all submissions as a CSV file
// @Tags submissions
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Router /admin/submissions/export.csv [get]
func (h *SubmissionHandler) ExportCSV(c *gin.Context) {
	data, err := h.submissionQueries.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, queries.ExportFilename(h.clock.Now())))
	c.Data(http.StatusOK, "text/csv", data)
}
