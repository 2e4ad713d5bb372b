package demande

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/demande"
)

const demandeColumns = `id, annonce_id, expediteur_id, statut, description,
		lieu_recuperation, lieu_livraison,
		contact_recuperation_nom, contact_recuperation_telephone,
		contact_livraison_nom, contact_livraison_telephone,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, demandeModifyEntity entities.DemandeModify) (*entities.Demande, error) {
	demandeModifyModel := FromDomainModify(&demandeModifyEntity)

	query := `
		INSERT INTO demandes (annonce_id, expediteur_id, statut, description,
			lieu_recuperation, lieu_livraison,
			contact_recuperation_nom, contact_recuperation_telephone,
			contact_livraison_nom, contact_livraison_telephone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + demandeColumns

	var demandeModel DemandeDB
	err := r.querier.QueryRow(
		ctx,
		query,
		demandeModifyModel.AnnonceID,
		demandeModifyModel.ExpediteurID,
		demandeModifyModel.Statut,
		demandeModifyModel.Description,
		demandeModifyModel.LieuRecuperation,
		demandeModifyModel.LieuLivraison,
		demandeModifyModel.ContactRecuperationNom,
		demandeModifyModel.ContactRecuperationTelephone,
		demandeModifyModel.ContactLivraisonNom,
		demandeModifyModel.ContactLivraisonTelephone,
	).Scan(scanTargets(&demandeModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			// частичный уникальный индекс: одна активная заявка на пару (annonce, expediteur)
			return nil, demande.ErrDemandeDejaActive
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, demande.ErrAnnonceNotFound
		}
		return nil, fmt.Errorf("unexpected demande repository create error: %w", err)
	}

	return ToDomain(&demandeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Demande, error) {
	query := `SELECT ` + demandeColumns + `
		FROM demandes
		WHERE id = $1`

	var demandeModel DemandeDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&demandeModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, demande.ErrDemandeNotFound
		}

		return nil, fmt.Errorf("unexpected demande repository getbyid error: %w", err)
	}

	return ToDomain(&demandeModel), nil
}

func (r *Repository) GetByExpediteur(ctx context.Context, expediteurID int64) ([]entities.Demande, error) {
	query := `SELECT ` + demandeColumns + `
		FROM demandes
		WHERE expediteur_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, expediteurID)
}

func (r *Repository) GetByConducteur(ctx context.Context, conducteurID int64) ([]entities.Demande, error) {
	query := `SELECT d.id, d.annonce_id, d.expediteur_id, d.statut, d.description,
			d.lieu_recuperation, d.lieu_livraison,
			d.contact_recuperation_nom, d.contact_recuperation_telephone,
			d.contact_livraison_nom, d.contact_livraison_telephone,
			d.created_at, d.updated_at
		FROM demandes d
		JOIN annonces a ON a.id = d.annonce_id
		WHERE a.conducteur_id = $1
		ORDER BY d.created_at DESC`

	return r.list(ctx, query, conducteurID)
}

func (r *Repository) UpdateStatut(ctx context.Context, id int64, from, to entities.DemandeStatusType) (*entities.Demande, error) {
	query := `
		UPDATE demandes
		SET statut = $1, updated_at = NOW()
		WHERE id = $2 AND statut = $3
		RETURNING ` + demandeColumns

	var demandeModel DemandeDB
	err := r.querier.QueryRow(ctx, query, to.String(), id, from.String()).
		Scan(scanTargets(&demandeModel)...)
	if err == nil {
		return ToDomain(&demandeModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected demande repository updatestatut error: %w", err)
	}

	// условие не сработало: либо записи нет, либо статус уже другой
	var currentStatut string
	err = r.querier.QueryRow(ctx, `SELECT statut FROM demandes WHERE id = $1`, id).Scan(&currentStatut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, demande.ErrDemandeNotFound
		}
		return nil, fmt.Errorf("unexpected demande repository updatestatut error: %w", err)
	}

	return nil, fmt.Errorf("%w: statut actuel %q", demande.ErrStatutModifie, currentStatut)
}

func (r *Repository) ExpireEnAttente(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE demandes
		SET statut = 'annulee', updated_at = NOW()
		WHERE statut = 'en_attente' AND created_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected demande repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Demande, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected demande repository list error: %w", err)
	}
	defer rows.Close()

	demandeModels := make([]DemandeDB, 0, 8)
	for rows.Next() {
		var demandeModel DemandeDB
		err := rows.Scan(scanTargets(&demandeModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected demande repository list error: %w", err)
		}
		demandeModels = append(demandeModels, demandeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected demande repository list error: %w", err)
	}

	return ToDomainList(demandeModels), nil
}

func scanTargets(d *DemandeDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.AnnonceID,
		&d.ExpediteurID,
		&d.Statut,
		&d.Description,
		&d.LieuRecuperation,
		&d.LieuLivraison,
		&d.ContactRecuperationNom,
		&d.ContactRecuperationTelephone,
		&d.ContactLivraisonNom,
		&d.ContactLivraisonTelephone,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}
