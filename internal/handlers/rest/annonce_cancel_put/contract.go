//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=annonce_cancel_put_test
package annonce_cancel_put

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelAnnonce(ctx context.Context, actor entities.Actor, annonceID int64) (*entities.Annonce, error)
}
