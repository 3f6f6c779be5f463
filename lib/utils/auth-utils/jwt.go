package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrEmptySecret = errors.New("jwt secret is not configured")

func GetAdminToken(username, secret string, expiresAt time.Time) (tokenString string, err error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := jwt.MapClaims{
		"sub":   username,
		"admin": true,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetSubject(ctx *fiber.Ctx) string {
	subject, _ := GetClaims(ctx).GetSubject()
	return subject
}
