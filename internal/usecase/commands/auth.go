package commands

import (
	"context"

	"card-tracker/internal/infra"
	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/errs"
	"card-tracker/internal/pkg/jwt"
	"card-tracker/internal/pkg/securekey"
	"card-tracker/internal/usecase/shared"
)

var (
	ErrInvalidSecurityKey = errs.New("invalid security key")
	ErrKeyNotConfigured   = errs.New("admin security key is not configured")
)

// adminKeyConfigKey is where the bcrypt hash of the admin security key
// lives in app_config.
const adminKeyConfigKey = "adminSecurityKey"

type AuthCommands interface {
	// Login exchanges the shared admin security key for a session token.
	Login(ctx context.Context, key string) (string, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	jwtSvc *jwt.Service
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, jwtSvc: jwtSvc, clock: clk}
}

func (c *authCommandsImpl) Login(ctx context.Context, key string) (string, error) {
	hash, err := c.uow.CommandReads().ConfigValue(ctx, adminKeyConfigKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrKeyNotConfigured
		}
		return "", errs.Wrap(err, "load admin key hash")
	}

	if err := securekey.CompareKey(hash, key); err != nil {
		return "", errs.Mark(err, ErrInvalidSecurityKey)
	}

	token, err := c.jwtSvc.GenerateAdminToken(c.clock.Now())
	if err != nil {
		return "", errs.Wrap(err, "generate admin token")
	}
	return token, nil
}
