package app

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/external/identity"
)

func (a *application) InitIdentityService() domain.IdentityService {
	return identity.NewIdentityService(a.config.Identity.URL, a.config.Identity.APIKey)
}
