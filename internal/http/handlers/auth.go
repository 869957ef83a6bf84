package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fundsinvestors/backend/internal/http/response"
	"github.com/fundsinvestors/backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Token(c *gin.Context) {
	token, err := ah.authService.GenerateToken(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"token": token})
}
