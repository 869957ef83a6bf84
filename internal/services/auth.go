package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fundsinvestors/backend/internal/platform/logger"
)

type AuthService interface {
	GenerateToken(ctx context.Context) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (jwt.MapClaims, error)
}

type authService struct {
	log          *logger.Logger
	jwtSecretKey string
	issuer       string
	audience     string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, jwtSecretKey, issuer, audience string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:          serviceLog,
		jwtSecretKey: jwtSecretKey,
		issuer:       issuer,
		audience:     audience,
		accessTTL:    accessTTL,
	}
}

func (as *authService) GenerateToken(ctx context.Context) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "testuser",
		"jti":  uuid.New().String(),
		"role": "Admin",
		"iat":  now.Unix(),
		"exp":  now.Add(as.accessTTL).Unix(),
	}
	if as.issuer != "" {
		claims["iss"] = as.issuer
	}
	if as.audience != "" {
		claims["aud"] = as.audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		as.log.Error("Failed to sign access token", "error", err)
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature, expiry, and, when configured, the
// issuer and audience of a bearer token.
func (as *authService) ValidateToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if as.issuer != "" {
		opts = append(opts, jwt.WithIssuer(as.issuer))
	}
	if as.audience != "" {
		opts = append(opts, jwt.WithAudience(as.audience))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
