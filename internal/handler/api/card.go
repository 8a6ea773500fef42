package api

import (
	"errors"
	"fmt"
	"net/http"

	"card-tracker/internal/domain/card"
	reqdto "card-tracker/internal/handler/dto/request"
	resdto "card-tracker/internal/handler/dto/response"
	"card-tracker/internal/pkg/cardpdf"
	"card-tracker/internal/pkg/config"
	"card-tracker/internal/usecase/commands"
	"card-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cardCommands commands.CardCommands
	cardQueries  queries.CardQueries
	appCfg       config.AppConfig
}

func NewCardHandler(cardCommands commands.CardCommands, cardQueries queries.CardQueries, appCfg config.AppConfig) *CardHandler {
	return &CardHandler{
		cardCommands: cardCommands,
		cardQueries:  cardQueries,
		appCfg:       appCfg,
	}
}

// @Summary Resolve card by QR token
// @Description Resolve a scanned QR token to the card it belongs to
// @Tags cards
// @Produce json
// @Param qr query string true "QR token"
// @Success 200 {object} resdto.ResolvedCardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /cards/resolve [get]
func (h *CardHandler) Resolve(c *gin.Context) {
	token := c.Query("qr")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing qr parameter",
		})
		return
	}

	view, err := h.cardQueries.ResolveByToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCardNotFound):
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
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResolvedCardView(view))
}

// @Summary List cards
// @Description List all cards, newest first
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CardResponse
// @Failure 401 {object} map[string]string
// @Router /admin/cards [get]
func (h *CardHandler) List(c *gin.Context) {
	views, err := h.cardQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCardViews(views))
}

// @Summary Create card
// @Description Issue a new card with a fresh QR token
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCardRequest true "Card request"
// @Success 201 {object} resdto.CardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req reqdto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.cardCommands.Create(c.Request.Context(), commands.CreateCardInput{
		Title:     req.Title,
		Recipient: req.Recipient,
		Amount:    req.Amount,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, card.ErrEmptyTitle),
			errors.Is(err, card.ErrEmptyRecipient),
			errors.Is(err, card.ErrInvalidAmount):
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

	view, err := h.cardQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCardView(view))
}

// @Summary Revoke card
// @Description Revoke an active card so it can no longer be redeemed
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/cards/{id}/revoke [post]
func (h *CardHandler) Revoke(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid card ID format",
		})
		return
	}

	if err := h.cardCommands.Revoke(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
			})
		case errors.Is(err, commands.ErrCardAlreadyRevoked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Card is already revoked",
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

// @Summary Delete card
// @Description Permanently delete a revoked card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid card ID format",
		})
		return
	}

	if err := h.cardCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
			})
		case errors.Is(err, commands.ErrCardNotRevoked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only revoked cards can be deleted",
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

// @Summary Download card PDF
// @Description Download a printable one-page PDF with the card's QR code
// @Tags cards
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/cards/{id}/pdf [get]
func (h *CardHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid card ID format",
		})
		return
	}

	view, err := h.cardQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	pdfBytes, err := cardpdf.Render(cardpdf.Card{
		Title:     view.Title,
		Recipient: view.Recipient,
		Amount:    view.Amount,
		QRToken:   view.QRToken,
	}, cardpdf.RedeemURL(h.appCfg.PublicBaseURL, view.QRToken))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="card-%s.pdf"`, view.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
