package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundsinvestors/backend/internal/http/response"
	"github.com/fundsinvestors/backend/internal/services"
	"github.com/fundsinvestors/backend/internal/types"
)

type FundHandler struct {
	fundService services.FundService
}

func NewFundHandler(fundService services.FundService) *FundHandler {
	return &FundHandler{fundService: fundService}
}

func (fh *FundHandler) GetAll(c *gin.Context) {
	funds, err := fh.fundService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, funds)
}

func (fh *FundHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	fund, err := fh.fundService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if fund == nil {
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("fund not found"))
		return
	}
	response.RespondOK(c, fund)
}

func (fh *FundHandler) Create(c *gin.Context) {
	var dto types.FundCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_failed", err)
		return
	}
	created, err := fh.fundService.Create(c.Request.Context(), &dto)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, "/api/fund/"+created.FundID.String(), created)
}

func (fh *FundHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var dto types.FundUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_failed", err)
		return
	}
	if id != dto.FundID {
		response.RespondError(c, http.StatusBadRequest, "id_mismatch", errors.New("route id does not match payload id"))
		return
	}
	if err := fh.fundService.Update(c.Request.Context(), &dto); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (fh *FundHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := fh.fundService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (fh *FundHandler) GetTransactionSummary(c *gin.Context) {
	summaries, err := fh.fundService.GetTransactionSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, summaries)
}
