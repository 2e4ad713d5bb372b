package annonce

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/annonce"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const annonceColumns = `id, conducteur_id, lieu_depart, lieu_arrivee, etapes, date_depart,
		capacite_poids, capacite_volume, prix, type_marchandise, est_urgent, statut,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, annonceModifyEntity entities.AnnonceModify) (*entities.Annonce, error) {
	annonceModifyModel := FromDomainModify(&annonceModifyEntity)

	query := `
		INSERT INTO annonces (conducteur_id, lieu_depart, lieu_arrivee, etapes, date_depart,
			capacite_poids, capacite_volume, prix, type_marchandise, est_urgent, statut)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, 0), $8, COALESCE($9, ''), COALESCE($10, FALSE), $11)
		RETURNING ` + annonceColumns

	var etapes []string
	if annonceModifyModel.Etapes != nil {
		etapes = *annonceModifyModel.Etapes
	}

	var annonceModel AnnonceDB
	err := r.querier.QueryRow(
		ctx,
		query,
		annonceModifyModel.ConducteurID,
		annonceModifyModel.LieuDepart,
		annonceModifyModel.LieuArrivee,
		etapes,
		annonceModifyModel.DateDepart,
		annonceModifyModel.CapacitePoids,
		annonceModifyModel.CapaciteVolume,
		annonceModifyModel.Prix,
		annonceModifyModel.TypeMarchandise,
		annonceModifyModel.EstUrgent,
		annonceModifyModel.Statut,
	).Scan(scanTargets(&annonceModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected annonce repository create error: %w", err)
	}

	return ToDomain(&annonceModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Annonce, error) {
	query := `SELECT ` + annonceColumns + `
		FROM annonces
		WHERE id = $1`

	var annonceModel AnnonceDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&annonceModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, annonce.ErrAnnonceNotFound
		}

		return nil, fmt.Errorf("unexpected annonce repository getbyid error: %w", err)
	}

	return ToDomain(&annonceModel), nil
}

func (r *Repository) GetActive(ctx context.Context, filter entities.AnnonceFilter) ([]entities.Annonce, error) {
	builder := qb.
		Select(annonceColumns).
		From("annonces").
		Where(sq.Eq{"statut": "active"})

	// опциональные критерии поиска
	if filter.LieuDepart != nil {
		builder = builder.Where(sq.ILike{"lieu_depart": *filter.LieuDepart + "%"})
	}
	if filter.LieuArrivee != nil {
		builder = builder.Where(sq.ILike{"lieu_arrivee": *filter.LieuArrivee + "%"})
	}
	if filter.DateDepartApres != nil {
		builder = builder.Where(sq.GtOrEq{"date_depart": *filter.DateDepartApres})
	}
	if filter.EstUrgent != nil {
		builder = builder.Where(sq.Eq{"est_urgent": *filter.EstUrgent})
	}

	builder = builder.OrderBy("date_depart")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected annonce repository getactive error: %w", err)
	}

	return r.list(ctx, query, args...)
}

func (r *Repository) GetByConducteur(ctx context.Context, conducteurID int64) ([]entities.Annonce, error) {
	query := `SELECT ` + annonceColumns + `
		FROM annonces
		WHERE conducteur_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, conducteurID)
}

func (r *Repository) UpdateStatut(ctx context.Context, id int64, from, to entities.AnnonceStatusType) (*entities.Annonce, error) {
	query := `
		UPDATE annonces
		SET statut = $1, updated_at = NOW()
		WHERE id = $2 AND statut = $3
		RETURNING ` + annonceColumns

	var annonceModel AnnonceDB
	err := r.querier.QueryRow(ctx, query, to.String(), id, from.String()).
		Scan(scanTargets(&annonceModel)...)
	if err == nil {
		return ToDomain(&annonceModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected annonce repository updatestatut error: %w", err)
	}

	var currentStatut string
	err = r.querier.QueryRow(ctx, `SELECT statut FROM annonces WHERE id = $1`, id).Scan(&currentStatut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, annonce.ErrAnnonceNotFound
		}
		return nil, fmt.Errorf("unexpected annonce repository updatestatut error: %w", err)
	}

	return nil, fmt.Errorf("%w: statut actuel %q", annonce.ErrStatutModifie, currentStatut)
}

func (r *Repository) GetDemandeResolution(ctx context.Context, annonceID int64) (nonTerminal, livrees int64, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE statut NOT IN ('refusee', 'livree', 'annulee')),
			COUNT(*) FILTER (WHERE statut = 'livree')
		FROM demandes
		WHERE annonce_id = $1`

	err = r.querier.QueryRow(ctx, query, annonceID).Scan(&nonTerminal, &livrees)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected annonce repository getdemanderesolution error: %w", err)
	}

	return nonTerminal, livrees, nil
}

func (r *Repository) CancelDemandesEnAttente(ctx context.Context, annonceID int64) (int64, error) {
	query := `
		UPDATE demandes
		SET statut = 'annulee', updated_at = NOW()
		WHERE annonce_id = $1 AND statut = 'en_attente'`

	result, err := r.querier.Exec(ctx, query, annonceID)
	if err != nil {
		return 0, fmt.Errorf("unexpected annonce repository canceldemandes error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Annonce, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected annonce repository list error: %w", err)
	}
	defer rows.Close()

	annonceModels := make([]AnnonceDB, 0, 8)
	for rows.Next() {
		var annonceModel AnnonceDB
		err := rows.Scan(scanTargets(&annonceModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected annonce repository list error: %w", err)
		}
		annonceModels = append(annonceModels, annonceModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected annonce repository list error: %w", err)
	}

	return ToDomainList(annonceModels), nil
}

func scanTargets(a *AnnonceDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.ConducteurID,
		&a.LieuDepart,
		&a.LieuArrivee,
		&a.Etapes,
		&a.DateDepart,
		&a.CapacitePoids,
		&a.CapaciteVolume,
		&a.Prix,
		&a.TypeMarchandise,
		&a.EstUrgent,
		&a.Statut,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
