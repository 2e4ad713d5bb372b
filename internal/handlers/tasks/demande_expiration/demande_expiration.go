package demande_expiration

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ExpireStaleDemandes(ctx context.Context, maxAge time.Duration) (int64, error)
}

type DemandeExpiration struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewDemandeExpiration(log logger.Logger, service Service, interval, maxAge time.Duration) *DemandeExpiration {
	return &DemandeExpiration{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (d *DemandeExpiration) TTL() time.Duration {
	return d.interval
}

func (d *DemandeExpiration) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.ExpireStaleDemandes(ctxWithTimeout, d.maxAge)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("expired_demandes", rowsAffected),
		).Info("demande expiration")
	}

	return err
}

func (d *DemandeExpiration) Info() string {
	return "demande expiration"
}
