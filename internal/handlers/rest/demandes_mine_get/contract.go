//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=demandes_mine_get_test
package demandes_mine_get

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
	GetDemandesExpediteur(ctx context.Context, actor entities.Actor) ([]entities.Demande, error)
}
