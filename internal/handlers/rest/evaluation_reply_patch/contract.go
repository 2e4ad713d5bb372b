//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=evaluation_reply_patch_test
package evaluation_reply_patch

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
	ReplyToEvaluation(ctx context.Context, actor entities.Actor, evaluationID int64, reponse string) (*entities.Evaluation, error)
}
