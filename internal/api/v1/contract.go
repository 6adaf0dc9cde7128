package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adspacehq/adspace/internal/api/dto"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/service"
)

type ContractHandler struct {
	service service.ContractService
	log     *logger.Logger
}

func NewContractHandler(service service.ContractService, log *logger.Logger) *ContractHandler {
	return &ContractHandler{service: service, log: log}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateContract(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("contract id is required").
			WithHint("Contract ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetContract(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	resp, err := h.service.ListContracts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SettleContract previews the early-termination settlement for a contract as
// of a given date.
func (h *ContractHandler) SettleContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("contract id is required").
			WithHint("Contract ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	// The body is optional; an absent one settles as of now.
	var req dto.SettlementRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid request format").
				Mark(ierr.ErrValidation))
			return
		}
	}

	resp, err := h.service.SettleContract(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
