package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fundsinvestors/backend/internal/http/response"
	"github.com/fundsinvestors/backend/internal/platform/apierr"
)

// respondServiceError maps a service-layer error onto the wire. Errors
// carrying an apierr status keep it; everything else is a generic 500.
func respondServiceError(c *gin.Context, err error) {
	status := apierr.StatusOf(err, http.StatusInternalServerError)
	code := apierr.CodeOf(err, "internal_error")
	response.RespondError(c, status, code, err)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}
