//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=evaluation_post_test
package evaluation_post

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
	CreateEvaluation(ctx context.Context, actor entities.Actor, demandeID int64, note int, commentaire string) (*entities.Evaluation, error)
}
