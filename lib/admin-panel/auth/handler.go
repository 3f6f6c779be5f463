package adminpanelauthhandler

import (
	"time"

	"employee-api/config"
	authutils "employee-api/lib/utils/auth-utils"
	authapimodels "employee-api/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Provider interface {
	Login(request authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = New(
		config.Conf.Admin.Username,
		config.Conf.Admin.PasswordHash,
		config.Conf.Admin.JWTSecret,
		time.Second*time.Duration(config.Conf.Admin.JWTExpireInSec),
	)
}

// New returns a Provider checking credentials against a single configured
// account. passwordHash is a bcrypt hash; an empty hash or secret disables login.
func New(username, passwordHash, secret string, ttl time.Duration) Provider {
	return impl{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       secret,
		ttl:          ttl,
	}
}

type impl struct {
	username     string
	passwordHash []byte
	secret       string
	ttl          time.Duration
}

func (i impl) Login(request authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("username", request.Username)
	if err = request.Validate(); err != nil {
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if len(i.passwordHash) == 0 || i.secret == "" {
		logger.Warn("admin login is disabled, password hash or jwt secret is not configured")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword(i.passwordHash, []byte(request.Password)); err != nil || request.Username != i.username {
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.WithError(err).Error("unable to check admin password")
		} else {
			logger.Info("admin login rejected")
		}
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	expiresAt := time.Now().Add(i.ttl)
	token, err := authutils.GetAdminToken(request.Username, i.secret, expiresAt)
	if err != nil {
		logger.WithError(err).Error("unable to sign admin token")
		return authapimodels.JWTResponse{}, err
	}
	logger.Info("admin logged in")
	return authapimodels.JWTResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
