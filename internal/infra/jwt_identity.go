package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brainsync/catalog/internal/models"
	"github.com/brainsync/catalog/internal/ports"
	"github.com/golang-jwt/jwt/v4"
)

// Роль едет внутри подписанного токена, а не отдельным флагом.
type JWTIdentity struct {
	secret []byte
}

func NewJWTIdentity(secret string) ports.IdentityProvider {
	return &JWTIdentity{secret: []byte(secret)}
}

func (s *JWTIdentity) Issue(ctx context.Context, identity models.Identity, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"uid":   identity.UID,
		"email": identity.Email,
		"role":  identity.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTIdentity) Verify(ctx context.Context, raw string) (*models.Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	identity := &models.Identity{
		UID:   claimString(claims, "uid"),
		Email: claimString(claims, "email"),
		Role:  claimString(claims, "role"),
	}
	if identity.UID == "" {
		return nil, errors.New("token has no uid")
	}
	return identity, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
