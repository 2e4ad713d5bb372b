package colis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

const referenceAttempts = 3

// Colis отвечает за физический жизненный цикл посылки: цепочку владения,
// журнал статусов, фото, подписи и инциденты. Журнал append-only: запись
// добавляется той же транзакцией, что и смена статуса, отклоненный переход
// не оставляет следов.
type Colis struct {
	repository Repository
	events     Events
	txManager  TxManager
}

func New(repository Repository, events Events, txManager TxManager) *Colis {
	return &Colis{
		repository: repository,
		events:     events,
		txManager:  txManager,
	}
}

// InstantiateColis создается координатором при принятии деманды (и только им).
// Повторное принятие упирается в уникальность demande_id - ErrColisDejaExistant.
func (s *Colis) InstantiateColis(ctx context.Context, demande entities.Demande) (*entities.Colis, error) {
	if demande.ID == 0 {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	initialStatut := entities.ColisEnAttenteRecuperation
	cargoType := entities.DefaultCargoType
	codeRecuperation := newConfirmationCode()
	codeLivraison := newConfirmationCode()

	initialHistory := entities.StatusHistoryEntry{
		Statut:      initialStatut,
		Date:        now,
		Commentaire: "colis créé",
	}

	var lastErr error
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		reference := newReference(now)

		colisModify := entities.ColisModify{
			Reference:        &reference,
			TrajetID:         &demande.AnnonceID,
			DemandeID:        &demande.ID,
			ExpediteurID:     &demande.ExpediteurID,
			Description:      &demande.Description,
			Type:             &cargoType,
			Statut:           &initialStatut,
			CodeRecuperation: &codeRecuperation,
			CodeLivraison:    &codeLivraison,
		}

		created, err := s.repository.Create(ctx, colisModify, initialHistory)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrReferenceCollision) {
			return nil, fmt.Errorf("create colis: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("create colis: %w", lastErr)
}

// AdvanceCustody - переход по графу владения, только кондуктором трипа.
// Запись истории добавляется безусловно, в том числе для исключительных
// статусов (perdu/endommage/refuse).
func (s *Colis) AdvanceCustody(ctx context.Context, actor entities.Actor, colisID int64, next entities.ColisStatusType, commentaire string, position *entities.Position) (*entities.Colis, error) {
	if !next.IsValid() {
		return nil, ErrInvalidStatut
	}

	colisEntity, err := s.repository.GetByID(ctx, colisID)
	if err != nil {
		return nil, fmt.Errorf("get colis: %w", err)
	}

	if err := s.requireConducteur(ctx, actor, colisID); err != nil {
		return nil, err
	}

	if !colisEntity.Statut.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, colisEntity.Statut, next)
	}

	history := entities.StatusHistoryEntry{
		Statut:      next,
		Date:        time.Now().UTC(),
		Commentaire: commentaire,
		Position:    position,
	}

	var updated *entities.Colis
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err = s.repository.UpdateStatut(ctx, colisID, colisEntity.Statut, next, history)
		if err != nil {
			return fmt.Errorf("update colis statut: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.ColisStatutChange(ctx, updated)
	return updated, nil
}

// AbandonColis переводит нетерминальный колис в refuse при отмене деманды.
// Вызывается координатором внутри его транзакции.
func (s *Colis) AbandonColis(ctx context.Context, colisID int64, commentaire string) error {
	colisEntity, err := s.repository.GetByID(ctx, colisID)
	if err != nil {
		return fmt.Errorf("get colis: %w", err)
	}

	if colisEntity.Statut.IsTerminal() {
		return nil
	}

	history := entities.StatusHistoryEntry{
		Statut:      entities.ColisRefuse,
		Date:        time.Now().UTC(),
		Commentaire: commentaire,
	}

	updated, err := s.repository.UpdateStatut(ctx, colisID, colisEntity.Statut, entities.ColisRefuse, history)
	if err != nil {
		return fmt.Errorf("update colis statut: %w", err)
	}

	s.events.ColisStatutChange(ctx, updated)
	return nil
}

func (s *Colis) AttachPhoto(ctx context.Context, actor entities.Actor, colisID int64, photo entities.Photo) error {
	if strings.TrimSpace(photo.URL) == "" {
		return ErrInvalidPhoto
	}

	colisEntity, err := s.repository.GetByID(ctx, colisID)
	if err != nil {
		return fmt.Errorf("get colis: %w", err)
	}

	if err := s.requireParty(ctx, actor, colisEntity); err != nil {
		return err
	}

	if colisEntity.Statut.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrColisTermine, colisEntity.Statut)
	}

	if photo.DateUpload.IsZero() {
		photo.DateUpload = time.Now().UTC()
	}

	err = s.repository.AppendPhoto(ctx, colisID, photo)
	if err != nil {
		return fmt.Errorf("append photo: %w", err)
	}
	return nil
}

// RecordSignature фиксирует подпись фазы recuperation/livraison. Предусловием
// перехода владения подпись не является - последовательность обеспечивает UI.
func (s *Colis) RecordSignature(ctx context.Context, actor entities.Actor, colisID int64, phase entities.SignaturePhase, signature entities.Signature) error {
	if phase != entities.PhaseRecuperation && phase != entities.PhaseLivraison {
		return ErrInvalidPhase
	}
	if strings.TrimSpace(signature.Nom) == "" || strings.TrimSpace(signature.Signature) == "" {
		return ErrMissingRequiredFields
	}

	if _, err := s.repository.GetByID(ctx, colisID); err != nil {
		return fmt.Errorf("get colis: %w", err)
	}

	if err := s.requireConducteur(ctx, actor, colisID); err != nil {
		return err
	}

	if signature.Date.IsZero() {
		signature.Date = time.Now().UTC()
	}

	err := s.repository.SetSignature(ctx, colisID, phase, signature)
	if err != nil {
		return fmt.Errorf("set signature: %w", err)
	}
	return nil
}

// ReportIncident - обе стороны могут заявить инцидент; статус колиса при этом
// не меняется.
func (s *Colis) ReportIncident(ctx context.Context, actor entities.Actor, colisID int64, incidentType entities.IncidentType, description string) (*entities.Incident, error) {
	if !incidentType.IsValid() {
		return nil, ErrInvalidIncidentType
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingRequiredFields
	}

	colisEntity, err := s.repository.GetByID(ctx, colisID)
	if err != nil {
		return nil, fmt.Errorf("get colis: %w", err)
	}

	if err := s.requireParty(ctx, actor, colisEntity); err != nil {
		return nil, err
	}

	incident := entities.Incident{
		ColisID:     colisID,
		Type:        incidentType,
		Description: description,
		Date:        time.Now().UTC(),
		Resolu:      false,
	}

	created, err := s.repository.AppendIncident(ctx, colisID, incident)
	if err != nil {
		return nil, fmt.Errorf("append incident: %w", err)
	}
	return created, nil
}

func (s *Colis) ResolveIncident(ctx context.Context, actor entities.Actor, colisID, incidentID int64, solution string) (*entities.Incident, error) {
	if strings.TrimSpace(solution) == "" {
		return nil, ErrMissingRequiredFields
	}

	colisEntity, err := s.repository.GetByID(ctx, colisID)
	if err != nil {
		return nil, fmt.Errorf("get colis: %w", err)
	}

	if err := s.requireParty(ctx, actor, colisEntity); err != nil {
		return nil, err
	}

	resolved, err := s.repository.ResolveIncident(ctx, colisID, incidentID, solution)
	if err != nil {
		return nil, fmt.Errorf("resolve incident: %w", err)
	}
	return resolved, nil
}

func (s *Colis) GetColis(ctx context.Context, actor entities.Actor, colisID int64) (*entities.Colis, error) {
	colisEntity, err := s.repository.GetByID(ctx, colisID)
	if err != nil {
		return nil, fmt.Errorf("get colis: %w", err)
	}

	if err := s.requireParty(ctx, actor, colisEntity); err != nil {
		return nil, err
	}
	return colisEntity, nil
}

func (s *Colis) GetColisByReference(ctx context.Context, actor entities.Actor, reference string) (*entities.Colis, error) {
	colisEntity, err := s.repository.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get colis by reference: %w", err)
	}

	if err := s.requireParty(ctx, actor, colisEntity); err != nil {
		return nil, err
	}
	return colisEntity, nil
}

// GetByDemandeID - внутренний доступ для координатора, без авторизации актора.
func (s *Colis) GetByDemandeID(ctx context.Context, demandeID int64) (*entities.Colis, error) {
	colisEntity, err := s.repository.GetByDemandeID(ctx, demandeID)
	if err != nil {
		return nil, fmt.Errorf("get colis by demande: %w", err)
	}
	return colisEntity, nil
}

func (s *Colis) requireConducteur(ctx context.Context, actor entities.Actor, colisID int64) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role != entities.RoleConducteur {
		return ErrForbidden
	}

	conducteurID, err := s.repository.GetConducteurIDByColisID(ctx, colisID)
	if err != nil {
		return fmt.Errorf("get conducteur for colis: %w", err)
	}
	if conducteurID != actor.ID {
		return ErrForbidden
	}
	return nil
}

func (s *Colis) requireParty(ctx context.Context, actor entities.Actor, colisEntity *entities.Colis) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role == entities.RoleExpediteur {
		if actor.ID != colisEntity.ExpediteurID {
			return ErrForbidden
		}
		return nil
	}
	if actor.Role == entities.RoleConducteur {
		return s.requireConducteur(ctx, actor, colisEntity.ID)
	}
	return ErrForbidden
}
