//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_signature_post_test
package colis_signature_post

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
	RecordSignature(ctx context.Context, actor entities.Actor, colisID int64, phase entities.SignaturePhase, signature entities.Signature) error
}
