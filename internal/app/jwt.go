package app

import (
	"github.com/lsgame/roomsvc/internal/config"
	"github.com/lsgame/roomsvc/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.config.JWT.Secret,
		Expiry: a.config.JWT.Expiry,
	}
	return auth.NewJWTService(cfg)
}
