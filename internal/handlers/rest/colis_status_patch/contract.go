//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_status_patch_test
package colis_status_patch

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AdvanceCustody(ctx context.Context, actor entities.Actor, colisID int64, next entities.ColisStatusType, commentaire string, position *entities.Position) (*entities.Colis, error)
}
