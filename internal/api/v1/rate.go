package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adspacehq/adspace/internal/api/dto"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/service"
)

type RateHandler struct {
	service service.RateService
	log     *logger.Logger
}

func NewRateHandler(service service.RateService, log *logger.Logger) *RateHandler {
	return &RateHandler{service: service, log: log}
}

func (h *RateHandler) UpsertRate(c *gin.Context) {
	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpsertRate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RateHandler) ListRates(c *gin.Context) {
	resp, err := h.service.ListRates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RateHandler) DeleteRate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("rate entry id is required").
			WithHint("Rate entry ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteRate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
