//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=demande_status_patch_test
package demande_status_patch

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/service/demande"
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
	RespondToDemande(ctx context.Context, actor entities.Actor, demandeID int64, decision demande.Decision) (*entities.Demande, error)
	StartTransit(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error)
	CompleteDemande(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error)
	CancelDemande(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error)
}
