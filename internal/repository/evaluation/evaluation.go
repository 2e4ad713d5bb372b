package evaluation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/evaluation"
)

const evaluationColumns = `id, demande_id, conducteur_id, expediteur_id, note, commentaire,
		reponse, date_reponse, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, evaluationModify entities.EvaluationModify) (*entities.Evaluation, error) {
	query := `
		INSERT INTO evaluations (demande_id, conducteur_id, expediteur_id, note, commentaire)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + evaluationColumns

	var evaluationModel EvaluationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		evaluationModify.DemandeID,
		evaluationModify.ConducteurID,
		evaluationModify.ExpediteurID,
		evaluationModify.Note,
		evaluationModify.Commentaire,
	).Scan(scanTargets(&evaluationModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, evaluation.ErrEvaluationExistant
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, evaluation.ErrDemandeNotFound
		}
		return nil, fmt.Errorf("unexpected evaluation repository create error: %w", err)
	}

	return ToDomain(&evaluationModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + `
		FROM evaluations
		WHERE id = $1`

	var evaluationModel EvaluationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&evaluationModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, evaluation.ErrEvaluationNotFound
		}

		return nil, fmt.Errorf("unexpected evaluation repository getbyid error: %w", err)
	}

	return ToDomain(&evaluationModel), nil
}

func (r *Repository) GetByConducteur(ctx context.Context, conducteurID int64) ([]entities.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + `
		FROM evaluations
		WHERE conducteur_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, conducteurID)
	if err != nil {
		return nil, fmt.Errorf("unexpected evaluation repository getbyconducteur error: %w", err)
	}
	defer rows.Close()

	evaluationModels := make([]EvaluationDB, 0, 8)
	for rows.Next() {
		var evaluationModel EvaluationDB
		err := rows.Scan(scanTargets(&evaluationModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected evaluation repository getbyconducteur error: %w", err)
		}
		evaluationModels = append(evaluationModels, evaluationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected evaluation repository getbyconducteur error: %w", err)
	}

	return ToDomainList(evaluationModels), nil
}

func (r *Repository) SetReponse(ctx context.Context, id int64, reponse string) (*entities.Evaluation, error) {
	// ответ единоразовый, условие reponse IS NULL делает операцию идемпотентно-безопасной
	query := `
		UPDATE evaluations
		SET reponse = $1, date_reponse = NOW()
		WHERE id = $2 AND reponse IS NULL
		RETURNING ` + evaluationColumns

	var evaluationModel EvaluationDB
	err := r.querier.QueryRow(ctx, query, reponse, id).Scan(scanTargets(&evaluationModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			err = r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM evaluations WHERE id = $1)`, id).Scan(&exists)
			if err != nil {
				return nil, fmt.Errorf("unexpected evaluation repository setreponse error: %w", err)
			}
			if !exists {
				return nil, evaluation.ErrEvaluationNotFound
			}
			return nil, evaluation.ErrDejaRepondu
		}
		return nil, fmt.Errorf("unexpected evaluation repository setreponse error: %w", err)
	}

	return ToDomain(&evaluationModel), nil
}

func scanTargets(e *EvaluationDB) []interface{} {
	return []interface{}{
		&e.ID,
		&e.DemandeID,
		&e.ConducteurID,
		&e.ExpediteurID,
		&e.Note,
		&e.Commentaire,
		&e.Reponse,
		&e.DateReponse,
		&e.CreatedAt,
	}
}
