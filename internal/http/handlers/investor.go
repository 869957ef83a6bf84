package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundsinvestors/backend/internal/http/response"
	"github.com/fundsinvestors/backend/internal/services"
	"github.com/fundsinvestors/backend/internal/types"
)

type InvestorHandler struct {
	investorService services.InvestorService
}

func NewInvestorHandler(investorService services.InvestorService) *InvestorHandler {
	return &InvestorHandler{investorService: investorService}
}

func (ih *InvestorHandler) GetAll(c *gin.Context) {
	investors, err := ih.investorService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, investors)
}

func (ih *InvestorHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	investor, err := ih.investorService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if investor == nil {
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("investor not found"))
		return
	}
	response.RespondOK(c, investor)
}

func (ih *InvestorHandler) Create(c *gin.Context) {
	var dto types.InvestorCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_failed", err)
		return
	}
	created, err := ih.investorService.Create(c.Request.Context(), &dto)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, "/api/investor/"+created.InvestorID.String(), created)
}

func (ih *InvestorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var dto types.InvestorUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_failed", err)
		return
	}
	if id != dto.InvestorID {
		response.RespondError(c, http.StatusBadRequest, "id_mismatch", errors.New("route id does not match payload id"))
		return
	}
	if err := ih.investorService.Update(c.Request.Context(), &dto); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (ih *InvestorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ih.investorService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
