package identity_probe

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Gateway interface {
	CheckAvailability(ctx context.Context) error
}

// IdentityProbe периодически проверяет доступность identity-сервиса,
// чтобы деградация аутентификации была видна в логах раньше,
// чем в жалобах пользователей.
type IdentityProbe struct {
	log      logger.Logger
	gateway  Gateway
	interval time.Duration
}

func NewIdentityProbe(log logger.Logger, gateway Gateway, interval time.Duration) *IdentityProbe {
	return &IdentityProbe{
		log:      log,
		gateway:  gateway,
		interval: interval,
	}
}

func (p *IdentityProbe) TTL() time.Duration {
	return p.interval
}

func (p *IdentityProbe) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	if err := p.gateway.CheckAvailability(ctxWithTimeout); err != nil {
		p.log.With(
			logger.NewField("error", err),
		).Warn("identity probe")
	}

	// недоступность внешнего сервиса не должна останавливать воркер
	return nil
}

func (p *IdentityProbe) Info() string {
	return "identity probe"
}
