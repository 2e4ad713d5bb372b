package evaluation

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

// Evaluation - отзыв экспедитора по доставленной деманде и единоразовый
// ответ кондуктора.
type Evaluation struct {
	repository Repository
	demandes   DemandeProvider
	annonces   AnnonceProvider
}

func New(repository Repository, demandes DemandeProvider, annonces AnnonceProvider) *Evaluation {
	return &Evaluation{
		repository: repository,
		demandes:   demandes,
		annonces:   annonces,
	}
}

func (s *Evaluation) CreateEvaluation(ctx context.Context, actor entities.Actor, demandeID int64, note int, commentaire string) (*entities.Evaluation, error) {
	if actor.Role != entities.RoleExpediteur {
		return nil, ErrForbidden
	}
	if note < 1 || note > 5 {
		return nil, ErrInvalidNote
	}

	demandeEntity, err := s.demandes.GetByID(ctx, demandeID)
	if err != nil {
		return nil, fmt.Errorf("get demande: %w", err)
	}

	if demandeEntity.ExpediteurID != actor.ID {
		return nil, ErrForbidden
	}
	if demandeEntity.Statut != entities.DemandeLivree {
		return nil, fmt.Errorf("%w: %s", ErrDemandeNonLivree, demandeEntity.Statut)
	}

	annonceEntity, err := s.annonces.GetAnnonce(ctx, demandeEntity.AnnonceID)
	if err != nil {
		return nil, fmt.Errorf("get annonce for demande: %w", err)
	}

	evaluationModify := entities.EvaluationModify{
		DemandeID:    &demandeID,
		ConducteurID: &annonceEntity.ConducteurID,
		ExpediteurID: &actor.ID,
		Note:         &note,
		Commentaire:  &commentaire,
	}

	created, err := s.repository.Create(ctx, evaluationModify)
	if err != nil {
		return nil, fmt.Errorf("create evaluation: %w", err)
	}
	return created, nil
}

// ReplyToEvaluation - ответ оцененного кондуктора, ровно один раз.
func (s *Evaluation) ReplyToEvaluation(ctx context.Context, actor entities.Actor, evaluationID int64, reponse string) (*entities.Evaluation, error) {
	if strings.TrimSpace(reponse) == "" {
		return nil, ErrMissingRequiredFields
	}

	evaluationEntity, err := s.repository.GetByID(ctx, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}

	if actor.ID != evaluationEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if evaluationEntity.Reponse != nil {
		return nil, ErrDejaRepondu
	}

	updated, err := s.repository.SetReponse(ctx, evaluationID, reponse)
	if err != nil {
		return nil, fmt.Errorf("set reponse: %w", err)
	}
	return updated, nil
}

func (s *Evaluation) GetEvaluationsConducteur(ctx context.Context, conducteurID int64) ([]entities.Evaluation, error) {
	evaluations, err := s.repository.GetByConducteur(ctx, conducteurID)
	if err != nil {
		return nil, fmt.Errorf("get evaluations by conducteur: %w", err)
	}
	return evaluations, nil
}
