package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adspacehq/adspace/internal/api/dto"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/service"
)

type CostingHandler struct {
	service service.CostingService
	log     *logger.Logger
}

func NewCostingHandler(service service.CostingService, log *logger.Logger) *CostingHandler {
	return &CostingHandler{service: service, log: log}
}

// Quote prices a set of placements for a duration and returns the costed
// quote with discount and installment schedule applied. The quote builder
// calls this on every edit, so the endpoint stays read-only and cheap.
func (h *CostingHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
