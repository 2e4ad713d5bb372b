//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=annonce_test
package annonce

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, annonceModify entities.AnnonceModify) (*entities.Annonce, error)
	GetByID(ctx context.Context, id int64) (*entities.Annonce, error)
	GetActive(ctx context.Context, filter entities.AnnonceFilter) ([]entities.Annonce, error)
	GetByConducteur(ctx context.Context, conducteurID int64) ([]entities.Annonce, error)

	UpdateStatut(ctx context.Context, id int64, from, to entities.AnnonceStatusType) (*entities.Annonce, error)

	// GetDemandeResolution - агрегат по дочерним демандам: количество
	// нетерминальных (annulee не считается) и количество livree.
	GetDemandeResolution(ctx context.Context, annonceID int64) (nonTerminal, livrees int64, err error)

	CancelDemandesEnAttente(ctx context.Context, annonceID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
