package jwt

import (
	"errors"
	"fmt"
	"palmera/config"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims mirrors the session tokens minted by the external identity
// provider. We never issue tokens here, only verify them with the shared
// secret.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWT verifies externally issued session tokens.
type JWT interface {
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

// New creates a new JWT verification service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// ValidateAccessToken parses and verifies an access token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.config.JWT.Issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(s.config.JWT.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWT.AccessSecret), nil
	}, parserOptions...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" && claims.Subject != "" {
		claims.UserID = claims.Subject
	}

	if claims.UserID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader pulls the raw token out of a "Bearer <token>"
// authorization header.
func ExtractTokenFromHeader(header string) (string, error) {
	const prefix = "Bearer "

	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(header[len(prefix):]), nil
}
