package api

import (
	"errors"
	"net/http"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/domain/submission"
	reqdto "card-tracker/internal/handler/dto/request"
	resdto "card-tracker/internal/handler/dto/response"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardRequestHandler struct {
	cardRequestCommands commands.CardRequestCommands
	cardRequestQueries  queries.CardRequestQueries
}

func NewCardRequestHandler(cardRequestCommands commands.CardRequestCommands, cardRequestQueries queries.CardRequestQueries) *CardRequestHandler {
	return &CardRequestHandler{
		cardRequestCommands: cardRequestCommands,
		cardRequestQueries:  cardRequestQueries,
	}
}

// @Summary Create card request
// @Description Ask for a new card to be issued
// @Tags card-requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCardRequestRequest true "Card request"
// @Success 201 {object} resdto.CardRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /card-requests [post]
func (h *CardRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateCardRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.cardRequestCommands.Submit(c.Request.Context(), commands.SubmitCardRequestInput{
		Name:   req.Name,
		Class:  req.Class,
		Phone:  req.Phone,
		Email:  req.Email,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cardrequest.ErrEmptyName),
			errors.Is(err, cardrequest.ErrEmptyClass),
			errors.Is(err, submission.ErrMissingContact):
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

	view, err := h.cardRequestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCardRequestView(view))
}

// @Summary List card requests
// @Description List all card requests, newest first
// @Tags card-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CardRequestResponse
// @Failure 401 {object} map[string]string
// @Router /admin/card-requests [get]
func (h *CardRequestHandler) List(c *gin.Context) {
	views, err := h.cardRequestQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCardRequestViews(views))
}

// @Summary Approve card request
// @Description Approve a pending request, minting a new card for the requester
// @Tags card-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card request ID"
// @Param request body reqdto.ApproveCardRequestRequest true "Approval request"
// @Success 200 {object} resdto.CardRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/card-requests/{id}/approve [post]
func (h *CardRequestHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid card request ID format",
		})
		return
	}

	var req reqdto.ApproveCardRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if _, err := h.cardRequestCommands.Approve(c.Request.Context(), id, req.Amount); err != nil {
		switch {
		case errors.Is(err, commands.ErrCardRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card request not found",
			})
		case errors.Is(err, commands.ErrCardRequestAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Card request has already been processed",
			})
		case errors.Is(err, card.ErrInvalidAmount):
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

	view, err := h.cardRequestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCardRequestView(view))
}

// @Summary Deny card request
// @Description Deny a pending card request
// @Tags card-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card request ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/card-requests/{id}/deny [post]
func (h *CardRequestHandler) Deny(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid card request ID format",
		})
		return
	}

	if err := h.cardRequestCommands.Deny(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCardRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card request not found",
			})
		case errors.Is(err, commands.ErrCardRequestAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Card request has already been processed",
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
