//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=annonces_mine_get_test
package annonces_mine_get

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
	GetAnnoncesConducteur(ctx context.Context, actor entities.Actor) ([]entities.Annonce, error)
}
