package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const AdminTokenCookie = "admin_token"

// AdminAuthorizationRequired guards the admin console; unauthenticated
// requests are sent to the login page. An empty secret rejects every token.
func AdminAuthorizationRequired(secret string) fiber.Handler {
	if secret == "" {
		return redirectToLogin
	}
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: "cookie:" + AdminTokenCookie,
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return redirectToLogin(ctx)
		},
	})
}

func redirectToLogin(ctx *fiber.Ctx) error {
	return ctx.Redirect("/admin/login", fiber.StatusSeeOther)
}
