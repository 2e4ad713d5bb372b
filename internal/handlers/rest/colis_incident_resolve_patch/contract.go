//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_incident_resolve_patch_test
package colis_incident_resolve_patch

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
	ResolveIncident(ctx context.Context, actor entities.Actor, colisID, incidentID int64, solution string) (*entities.Incident, error)
}
