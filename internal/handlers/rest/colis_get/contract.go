//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_get_test
package colis_get

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
	GetColis(ctx context.Context, actor entities.Actor, colisID int64) (*entities.Colis, error)
	GetColisByReference(ctx context.Context, actor entities.Actor, reference string) (*entities.Colis, error)
}
