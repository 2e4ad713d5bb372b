//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=demande_post_test
package demande_post

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
	CreateDemande(ctx context.Context, actor entities.Actor, demandeModify entities.DemandeModify) (*entities.Demande, error)
}
