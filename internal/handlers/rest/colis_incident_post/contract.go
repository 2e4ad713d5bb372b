//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_incident_post_test
package colis_incident_post

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
	ReportIncident(ctx context.Context, actor entities.Actor, colisID int64, incidentType entities.IncidentType, description string) (*entities.Incident, error)
}
