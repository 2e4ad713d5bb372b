//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=demande_test
package demande

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, demandeModify entities.DemandeModify) (*entities.Demande, error)
	GetByID(ctx context.Context, id int64) (*entities.Demande, error)
	GetByExpediteur(ctx context.Context, expediteurID int64) ([]entities.Demande, error)
	GetByConducteur(ctx context.Context, conducteurID int64) ([]entities.Demande, error)

	// UpdateStatut применяет переход только если текущий статус равен from
	// (условный апдейт, защита от гонок). Возвращает ErrStatutModifie если
	// деманда существует, но статус уже другой.
	UpdateStatut(ctx context.Context, id int64, from, to entities.DemandeStatusType) (*entities.Demande, error)

	// ExpireEnAttente отменяет заявки en_attente, созданные раньше cutoff.
	ExpireEnAttente(ctx context.Context, cutoff time.Time) (int64, error)
}

type AnnonceProvider interface {
	GetAnnonce(ctx context.Context, id int64) (*entities.Annonce, error)
}

type ColisService interface {
	InstantiateColis(ctx context.Context, demande entities.Demande) (*entities.Colis, error)
	GetByDemandeID(ctx context.Context, demandeID int64) (*entities.Colis, error)
	AbandonColis(ctx context.Context, colisID int64, commentaire string) error
}

type Events interface {
	DemandeStatutChange(ctx context.Context, demande *entities.Demande)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
