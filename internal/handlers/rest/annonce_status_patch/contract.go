//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=annonce_status_patch_test
package annonce_status_patch

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
	UpdateStatut(ctx context.Context, actor entities.Actor, annonceID int64, next entities.AnnonceStatusType) (*entities.Annonce, error)
}
