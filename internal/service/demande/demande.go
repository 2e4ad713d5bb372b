package demande

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/annonce"
	"marketplace/internal/service/colis"
)

type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionRefuse Decision = "refuse"
)

// Demande координирует жизненный цикл деманды и связанных с ней записей:
// принятие деманды создает колис в той же транзакции, завершение требует
// доставленного колиса.
type Demande struct {
	repository   Repository
	annonces     AnnonceProvider
	colisService ColisService
	events       Events
	txManager    TxManager
}

func New(
	repository Repository,
	annonces AnnonceProvider,
	colisService ColisService,
	events Events,
	txManager TxManager,
) *Demande {
	return &Demande{
		repository:   repository,
		annonces:     annonces,
		colisService: colisService,
		events:       events,
		txManager:    txManager,
	}
}

func (s *Demande) CreateDemande(ctx context.Context, actor entities.Actor, demandeModify entities.DemandeModify) (*entities.Demande, error) {
	if actor.Role != entities.RoleExpediteur {
		return nil, ErrForbidden
	}

	if demandeModify.AnnonceID == nil ||
		demandeModify.Description == nil ||
		demandeModify.LieuRecuperation == nil ||
		demandeModify.LieuLivraison == nil ||
		demandeModify.ContactRecuperation == nil ||
		demandeModify.ContactLivraison == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidLocation(*demandeModify.LieuRecuperation) || !isValidLocation(*demandeModify.LieuLivraison) {
		return nil, ErrInvalidLocation
	}
	if !isValidContact(*demandeModify.ContactRecuperation) || !isValidContact(*demandeModify.ContactLivraison) {
		return nil, ErrInvalidContact
	}

	annonceEntity, err := s.annonces.GetAnnonce(ctx, *demandeModify.AnnonceID)
	if err != nil {
		if errors.Is(err, annonce.ErrAnnonceNotFound) {
			return nil, ErrAnnonceNotFound
		}
		return nil, fmt.Errorf("get annonce: %w", err)
	}

	if annonceEntity.Statut != entities.AnnonceActive {
		return nil, ErrAnnonceNotActive
	}

	initialStatut := entities.DemandeEnAttente
	demandeModify.ExpediteurID = &actor.ID
	demandeModify.Statut = &initialStatut

	created, err := s.repository.Create(ctx, demandeModify)
	if err != nil {
		return nil, fmt.Errorf("create demande: %w", err)
	}

	// начальный en_attente публикуется тем же событием смены статуса:
	// нотификации кондуктора начинаются с создания заявки
	s.events.DemandeStatutChange(ctx, created)
	return created, nil
}

// RespondToDemande - решение кондуктора по деманде. При accept колис
// инстанцируется в той же транзакции: деманда acceptee без колиса
// невозможна даже при падении между записями.
func (s *Demande) RespondToDemande(ctx context.Context, actor entities.Actor, demandeID int64, decision Decision) (*entities.Demande, error) {
	if decision != DecisionAccept && decision != DecisionRefuse {
		return nil, ErrInvalidDecision
	}

	demandeEntity, annonceEntity, err := s.getDemandeWithAnnonce(ctx, demandeID)
	if err != nil {
		return nil, err
	}

	if actor.ID != annonceEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if demandeEntity.Statut != entities.DemandeEnAttente {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, demandeEntity.Statut)
	}

	target := entities.DemandeRefusee
	if decision == DecisionAccept {
		target = entities.DemandeAcceptee
	}

	var updated *entities.Demande
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = s.repository.UpdateStatut(ctx, demandeID, entities.DemandeEnAttente, target)
		if err != nil {
			return fmt.Errorf("update demande statut: %w", err)
		}

		if decision == DecisionAccept {
			_, err = s.colisService.InstantiateColis(ctx, *updated)
			if err != nil {
				return fmt.Errorf("instantiate colis: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.DemandeStatutChange(ctx, updated)
	return updated, nil
}

func (s *Demande) StartTransit(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error) {
	demandeEntity, annonceEntity, err := s.getDemandeWithAnnonce(ctx, demandeID)
	if err != nil {
		return nil, err
	}

	if actor.ID != annonceEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if !demandeEntity.Statut.CanTransitionTo(entities.DemandeEnCours) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, demandeEntity.Statut, entities.DemandeEnCours)
	}

	updated, err := s.repository.UpdateStatut(ctx, demandeID, entities.DemandeAcceptee, entities.DemandeEnCours)
	if err != nil {
		return nil, fmt.Errorf("update demande statut: %w", err)
	}

	s.events.DemandeStatutChange(ctx, updated)
	return updated, nil
}

// CompleteDemande - en_cours -> livree, только когда связанный колис уже livre.
func (s *Demande) CompleteDemande(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error) {
	demandeEntity, annonceEntity, err := s.getDemandeWithAnnonce(ctx, demandeID)
	if err != nil {
		return nil, err
	}

	if actor.ID != annonceEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if !demandeEntity.Statut.CanTransitionTo(entities.DemandeLivree) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, demandeEntity.Statut, entities.DemandeLivree)
	}

	var updated *entities.Demande
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		colisEntity, err := s.colisService.GetByDemandeID(ctx, demandeID)
		if err != nil {
			return fmt.Errorf("get colis for demande: %w", err)
		}

		if colisEntity.Statut != entities.ColisLivre {
			return fmt.Errorf("%w: colis statut %s", ErrColisNotDelivered, colisEntity.Statut)
		}

		updated, err = s.repository.UpdateStatut(ctx, demandeID, entities.DemandeEnCours, entities.DemandeLivree)
		if err != nil {
			return fmt.Errorf("update demande statut: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.DemandeStatutChange(ctx, updated)
	return updated, nil
}

// CancelDemande - отмена экспедитором (или админом) пока деманда не в пути.
// Колис уже принятой деманды переводится в refuse той же транзакцией.
func (s *Demande) CancelDemande(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error) {
	demandeEntity, err := s.repository.GetByID(ctx, demandeID)
	if err != nil {
		return nil, fmt.Errorf("get demande: %w", err)
	}

	if actor.ID != demandeEntity.ExpediteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if demandeEntity.Statut != entities.DemandeEnAttente && demandeEntity.Statut != entities.DemandeAcceptee {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, demandeEntity.Statut)
	}

	priorStatut := demandeEntity.Statut

	var updated *entities.Demande
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = s.repository.UpdateStatut(ctx, demandeID, priorStatut, entities.DemandeAnnulee)
		if err != nil {
			return fmt.Errorf("update demande statut: %w", err)
		}

		if priorStatut != entities.DemandeAcceptee {
			return nil
		}

		colisEntity, err := s.colisService.GetByDemandeID(ctx, demandeID)
		if err != nil {
			if errors.Is(err, colis.ErrColisNotFound) {
				return nil
			}
			return fmt.Errorf("get colis for demande: %w", err)
		}

		if colisEntity.Statut.IsTerminal() {
			return nil
		}

		err = s.colisService.AbandonColis(ctx, colisEntity.ID, "demande annulée")
		if err != nil {
			return fmt.Errorf("abandon colis: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.DemandeStatutChange(ctx, updated)
	return updated, nil
}

func (s *Demande) GetDemande(ctx context.Context, actor entities.Actor, demandeID int64) (*entities.Demande, error) {
	demandeEntity, annonceEntity, err := s.getDemandeWithAnnonce(ctx, demandeID)
	if err != nil {
		return nil, err
	}

	if actor.ID != demandeEntity.ExpediteurID && actor.ID != annonceEntity.ConducteurID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	return demandeEntity, nil
}

func (s *Demande) GetDemandesExpediteur(ctx context.Context, actor entities.Actor) ([]entities.Demande, error) {
	demandes, err := s.repository.GetByExpediteur(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get demandes by expediteur: %w", err)
	}
	return demandes, nil
}

func (s *Demande) GetDemandesConducteur(ctx context.Context, actor entities.Actor) ([]entities.Demande, error) {
	demandes, err := s.repository.GetByConducteur(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get demandes by conducteur: %w", err)
	}
	return demandes, nil
}

// ExpireStaleDemandes отменяет заявки en_attente, на которые кондуктор так и
// не ответил за maxAge. Вызывается фоновой задачей.
func (s *Demande) ExpireStaleDemandes(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)

	expired, err := s.repository.ExpireEnAttente(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expire demandes: %w", err)
	}
	return expired, nil
}

func (s *Demande) getDemandeWithAnnonce(ctx context.Context, demandeID int64) (*entities.Demande, *entities.Annonce, error) {
	demandeEntity, err := s.repository.GetByID(ctx, demandeID)
	if err != nil {
		return nil, nil, fmt.Errorf("get demande: %w", err)
	}

	annonceEntity, err := s.annonces.GetAnnonce(ctx, demandeEntity.AnnonceID)
	if err != nil {
		return nil, nil, fmt.Errorf("get annonce for demande: %w", err)
	}

	return demandeEntity, annonceEntity, nil
}
