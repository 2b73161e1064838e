package identity_fx

import (
	"context"

	"go.uber.org/fx"

	"gymtrack/internal/config"
	"gymtrack/internal/infra"
)

var Module = fx.Provide(provideIdentityProvider)

func provideIdentityProvider(cfg *config.Config) (infra.IdentityProvider, error) {
	return infra.NewGoogleIdentityProvider(context.Background(), cfg)
}
