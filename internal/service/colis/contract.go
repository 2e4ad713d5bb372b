//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=colis_test
package colis

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, colisModify entities.ColisModify, initialHistory entities.StatusHistoryEntry) (*entities.Colis, error)
	GetByID(ctx context.Context, id int64) (*entities.Colis, error)
	GetByReference(ctx context.Context, reference string) (*entities.Colis, error)
	GetByDemandeID(ctx context.Context, demandeID int64) (*entities.Colis, error)

	// UpdateStatut применяет переход только из ожидаемого статуса и вставляет
	// запись истории той же транзакцией - либо оба изменения, либо ни одного.
	UpdateStatut(ctx context.Context, id int64, from, to entities.ColisStatusType, history entities.StatusHistoryEntry) (*entities.Colis, error)

	GetConducteurIDByColisID(ctx context.Context, colisID int64) (int64, error)

	AppendPhoto(ctx context.Context, colisID int64, photo entities.Photo) error
	SetSignature(ctx context.Context, colisID int64, phase entities.SignaturePhase, signature entities.Signature) error

	AppendIncident(ctx context.Context, colisID int64, incident entities.Incident) (*entities.Incident, error)
	ResolveIncident(ctx context.Context, colisID, incidentID int64, solution string) (*entities.Incident, error)
}

type Events interface {
	ColisStatutChange(ctx context.Context, colis *entities.Colis)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
