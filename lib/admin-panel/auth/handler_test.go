package adminpanelauthhandler

import (
	"testing"
	"time"

	authapimodels "employee-api/models/api/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.Nil(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	provider := New("admin", hashPassword(t, "secret-pass"), "jwt-secret", time.Hour)

	t.Run(`valid credentials issue a signed token`, func(t *testing.T) {
		response, err := provider.Login(authapimodels.LoginRequest{Username: "admin", Password: "secret-pass"})
		require.Nil(t, err)
		require.True(t, response.ExpiresAt.After(time.Now()))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(response.Token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte("jwt-secret"), nil
		})
		require.Nil(t, err)
		require.True(t, token.Valid)
		subject, err := claims.GetSubject()
		require.Nil(t, err)
		require.Equal(t, "admin", subject)
	})

	t.Run(`wrong password`, func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Username: "admin", Password: "nope"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run(`wrong username`, func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Username: "root", Password: "secret-pass"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run(`plain text in place of the hash never matches`, func(t *testing.T) {
		plain := New("admin", "secret-pass", "jwt-secret", time.Hour)
		_, err := plain.Login(authapimodels.LoginRequest{Username: "admin", Password: "secret-pass"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run(`empty hash or secret disables login`, func(t *testing.T) {
		noHash := New("admin", "", "jwt-secret", time.Hour)
		_, err := noHash.Login(authapimodels.LoginRequest{Username: "admin", Password: ""})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
		_, err = noHash.Login(authapimodels.LoginRequest{Username: "admin", Password: "anything"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))

		noSecret := New("admin", hashPassword(t, "secret-pass"), "", time.Hour)
		_, err = noSecret.Login(authapimodels.LoginRequest{Username: "admin", Password: "secret-pass"})
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}
