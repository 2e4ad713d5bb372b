package annonce

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Annonce struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Annonce {
	return &Annonce{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Annonce) CreateAnnonce(ctx context.Context, actor entities.Actor, annonceModify entities.AnnonceModify) (*entities.Annonce, error) {
	if actor.Role != entities.RoleConducteur {
		return nil, ErrForbidden
	}

	if annonceModify.LieuDepart == nil ||
		annonceModify.LieuArrivee == nil ||
		annonceModify.DateDepart == nil ||
		annonceModify.CapacitePoids == nil ||
		annonceModify.Prix == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidPlace(*annonceModify.LieuDepart) || !isValidPlace(*annonceModify.LieuArrivee) {
		return nil, ErrInvalidRoute
	}
	if *annonceModify.CapacitePoids <= 0 {
		return nil, ErrInvalidCapacity
	}
	if annonceModify.CapaciteVolume != nil && *annonceModify.CapaciteVolume <= 0 {
		return nil, ErrInvalidCapacity
	}
	if *annonceModify.Prix < 0 {
		return nil, ErrInvalidPrice
	}

	initialStatut := entities.AnnonceActive
	annonceModify.ConducteurID = &actor.ID
	annonceModify.Statut = &initialStatut

	created, err := s.repository.Create(ctx, annonceModify)
	if err != nil {
		return nil, fmt.Errorf("create annonce: %w", err)
	}
	return created, nil
}

func (s *Annonce) GetAnnonce(ctx context.Context, id int64) (*entities.Annonce, error) {
	annonceEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get annonce: %w", err)
	}
	return annonceEntity, nil
}

func (s *Annonce) GetAnnoncesActives(ctx context.Context, filter entities.AnnonceFilter) ([]entities.Annonce, error) {
	annonces, err := s.repository.GetActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get active annonces: %w", err)
	}
	return annonces, nil
}

func (s *Annonce) GetAnnoncesConducteur(ctx context.Context, actor entities.Actor) ([]entities.Annonce, error) {
	annonces, err := s.repository.GetByConducteur(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get annonces by conducteur: %w", err)
	}
	return annonces, nil
}

// UpdateStatut - продвижение по монотонной цепочке active -> en_cours ->
// confirme владельцем. termine и annule идут через Complete/Cancel.
func (s *Annonce) UpdateStatut(ctx context.Context, actor entities.Actor, annonceID int64, next entities.AnnonceStatusType) (*entities.Annonce, error) {
	if next != entities.AnnonceEnCours && next != entities.AnnonceConfirme {
		return nil, ErrInvalidStatut
	}

	annonceEntity, err := s.getOwned(ctx, actor, annonceID)
	if err != nil {
		return nil, err
	}

	if !annonceEntity.Statut.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, annonceEntity.Statut, next)
	}

	updated, err := s.repository.UpdateStatut(ctx, annonceID, annonceEntity.Statut, next)
	if err != nil {
		return nil, fmt.Errorf("update annonce statut: %w", err)
	}
	return updated, nil
}

// CompleteAnnonce - явное действие кондуктора, не автоматика: при нескольких
// демандах на одну аннонсу агрегатное закрытие неоднозначно, решает человек.
// Допускается когда все неотмененные деманды терминальны и хотя бы одна livree.
func (s *Annonce) CompleteAnnonce(ctx context.Context, actor entities.Actor, annonceID int64) (*entities.Annonce, error) {
	annonceEntity, err := s.getOwned(ctx, actor, annonceID)
	if err != nil {
		return nil, err
	}

	if !annonceEntity.Statut.CanTransitionTo(entities.AnnonceTermine) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, annonceEntity.Statut, entities.AnnonceTermine)
	}

	var updated *entities.Annonce
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		nonTerminal, livrees, err := s.repository.GetDemandeResolution(ctx, annonceID)
		if err != nil {
			return fmt.Errorf("get demande resolution: %w", err)
		}

		if nonTerminal > 0 || livrees == 0 {
			return fmt.Errorf("%w: %d non-terminal, %d livrees", ErrDemandesNonResolues, nonTerminal, livrees)
		}

		updated, err = s.repository.UpdateStatut(ctx, annonceID, annonceEntity.Statut, entities.AnnonceTermine)
		if err != nil {
			return fmt.Errorf("update annonce statut: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelAnnonce отменяет аннонсу и ее деманды en_attente одной транзакцией.
// Принятые деманды не трогаем: их колис может быть уже в пути, кондуктор
// закрывает их по отдельности.
func (s *Annonce) CancelAnnonce(ctx context.Context, actor entities.Actor, annonceID int64) (*entities.Annonce, error) {
	annonceEntity, err := s.repository.GetByID(ctx, annonceID)
	if err != nil {
		return nil, fmt.Errorf("get annonce: %w", err)
	}

	if actor.ID != annonceEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if !annonceEntity.Statut.CanTransitionTo(entities.AnnonceAnnule) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, annonceEntity.Statut, entities.AnnonceAnnule)
	}

	var updated *entities.Annonce
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = s.repository.UpdateStatut(ctx, annonceID, annonceEntity.Statut, entities.AnnonceAnnule)
		if err != nil {
			return fmt.Errorf("update annonce statut: %w", err)
		}

		_, err = s.repository.CancelDemandesEnAttente(ctx, annonceID)
		if err != nil {
			return fmt.Errorf("cancel pending demandes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Annonce) getOwned(ctx context.Context, actor entities.Actor, annonceID int64) (*entities.Annonce, error) {
	annonceEntity, err := s.repository.GetByID(ctx, annonceID)
	if err != nil {
		return nil, fmt.Errorf("get annonce: %w", err)
	}

	if actor.ID != annonceEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return annonceEntity, nil
}
