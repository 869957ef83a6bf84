package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundsinvestors/backend/internal/http/response"
	"github.com/fundsinvestors/backend/internal/services"
	"github.com/fundsinvestors/backend/internal/types"
)

// TransactionHandler exposes list, get, and create. Transactions are
// immutable events over HTTP; the service still supports update/delete for
// internal use.
type TransactionHandler struct {
	transactionService services.TransactionService
}

func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (th *TransactionHandler) GetAll(c *gin.Context) {
	transactions, err := th.transactionService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, transactions)
}

func (th *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	txn, err := th.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if txn == nil {
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("transaction not found"))
		return
	}
	response.RespondOK(c, txn)
}

func (th *TransactionHandler) Create(c *gin.Context) {
	var dto types.TransactionCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_failed", err)
		return
	}
	created, err := th.transactionService.Create(c.Request.Context(), &dto)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, "/api/transaction/"+created.TransactionID.String(), created)
}
