//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=evaluation_test
package evaluation

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, evaluationModify entities.EvaluationModify) (*entities.Evaluation, error)
	GetByID(ctx context.Context, id int64) (*entities.Evaluation, error)
	GetByConducteur(ctx context.Context, conducteurID int64) ([]entities.Evaluation, error)
	SetReponse(ctx context.Context, id int64, reponse string) (*entities.Evaluation, error)
}

type DemandeProvider interface {
	GetByID(ctx context.Context, id int64) (*entities.Demande, error)
}

type AnnonceProvider interface {
	GetAnnonce(ctx context.Context, id int64) (*entities.Annonce, error)
}
