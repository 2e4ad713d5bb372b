//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_scan_test
package colis_scan

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
	AdvanceCustody(ctx context.Context, actor entities.Actor, colisID int64, next entities.ColisStatusType, commentaire string, position *entities.Position) (*entities.Colis, error)
}
