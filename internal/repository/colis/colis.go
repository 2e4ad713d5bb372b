package colis

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/colis"
)

// имена уникальных констрейнтов из миграций, различаем их при 23505
const (
	constraintReference = "colis_reference_key"
	constraintDemandeID = "colis_demande_id_key"
)

const colisColumns = `id, reference, trajet_id, demande_id, expediteur_id, description,
		poids, longueur, largeur, hauteur, valeur_declaree, type, statut,
		date_recuperation, date_expedition, date_livraison,
		signature_recuperation_nom, signature_recuperation_data, signature_recuperation_date,
		signature_livraison_nom, signature_livraison_data, signature_livraison_date,
		code_recuperation, code_livraison, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, colisModify entities.ColisModify, initialHistory entities.StatusHistoryEntry) (*entities.Colis, error) {
	query := `
		INSERT INTO colis (reference, trajet_id, demande_id, expediteur_id, description,
			poids, longueur, largeur, hauteur, valeur_declaree, type, statut,
			code_recuperation, code_livraison)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), COALESCE($6, 0), $7, $8, $9, COALESCE($10, 0), $11, $12, $13, $14)
		RETURNING ` + colisColumns

	var dimensions entities.Dimensions
	if colisModify.Dimensions != nil {
		dimensions = *colisModify.Dimensions
	}

	var cargoType, statut *string
	if colisModify.Type != nil {
		s := colisModify.Type.String()
		cargoType = &s
	}
	if colisModify.Statut != nil {
		s := colisModify.Statut.String()
		statut = &s
	}

	var colisModel ColisDB
	err := r.querier.QueryRow(
		ctx,
		query,
		colisModify.Reference,
		colisModify.TrajetID,
		colisModify.DemandeID,
		colisModify.ExpediteurID,
		colisModify.Description,
		colisModify.Poids,
		dimensions.Longueur,
		dimensions.Largeur,
		dimensions.Hauteur,
		colisModify.ValeurDeclaree,
		cargoType,
		statut,
		colisModify.CodeRecuperation,
		colisModify.CodeLivraison,
	).Scan(scanTargets(&colisModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			switch repository.PgErrConstraint(err) {
			case constraintReference:
				return nil, colis.ErrReferenceCollision
			case constraintDemandeID:
				return nil, colis.ErrColisDejaExistant
			}
			return nil, fmt.Errorf("unexpected colis repository create error: %w", err)
		}
		return nil, fmt.Errorf("unexpected colis repository create error: %w", err)
	}

	err = r.appendHistory(ctx, colisModel.ID, initialHistory)
	if err != nil {
		return nil, err
	}

	return r.assemble(ctx, &colisModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Colis, error) {
	return r.getOne(ctx, `SELECT `+colisColumns+` FROM colis WHERE id = $1`, id)
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*entities.Colis, error) {
	return r.getOne(ctx, `SELECT `+colisColumns+` FROM colis WHERE reference = $1`, reference)
}

func (r *Repository) GetByDemandeID(ctx context.Context, demandeID int64) (*entities.Colis, error) {
	return r.getOne(ctx, `SELECT `+colisColumns+` FROM colis WHERE demande_id = $1`, demandeID)
}

func (r *Repository) UpdateStatut(ctx context.Context, id int64, from, to entities.ColisStatusType, history entities.StatusHistoryEntry) (*entities.Colis, error) {
	// вехи (date_*) проставляются тем же апдейтом, что и смена статуса
	query := `
		UPDATE colis
		SET statut = $1,
			date_recuperation = CASE WHEN $1 = 'recupere' THEN $2::timestamptz ELSE date_recuperation END,
			date_expedition = CASE WHEN $1 = 'en_transit' THEN $2::timestamptz ELSE date_expedition END,
			date_livraison = CASE WHEN $1 = 'livre' THEN $2::timestamptz ELSE date_livraison END,
			updated_at = NOW()
		WHERE id = $3 AND statut = $4
		RETURNING ` + colisColumns

	var colisModel ColisDB
	err := r.querier.QueryRow(ctx, query, to.String(), history.Date, id, from.String()).
		Scan(scanTargets(&colisModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var currentStatut string
			err = r.querier.QueryRow(ctx, `SELECT statut FROM colis WHERE id = $1`, id).Scan(&currentStatut)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, colis.ErrColisNotFound
				}
				return nil, fmt.Errorf("unexpected colis repository updatestatut error: %w", err)
			}
			return nil, fmt.Errorf("%w: statut actuel %q", colis.ErrStatutModifie, currentStatut)
		}
		return nil, fmt.Errorf("unexpected colis repository updatestatut error: %w", err)
	}

	err = r.appendHistory(ctx, id, history)
	if err != nil {
		return nil, err
	}

	return r.assemble(ctx, &colisModel)
}

func (r *Repository) GetConducteurIDByColisID(ctx context.Context, colisID int64) (int64, error) {
	query := `
		SELECT a.conducteur_id
		FROM colis c
		JOIN annonces a ON a.id = c.trajet_id
		WHERE c.id = $1`

	var conducteurID int64
	err := r.querier.QueryRow(ctx, query, colisID).Scan(&conducteurID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, colis.ErrColisNotFound
		}
		return 0, fmt.Errorf("unexpected colis repository getconducteurid error: %w", err)
	}

	return conducteurID, nil
}

func (r *Repository) AppendPhoto(ctx context.Context, colisID int64, photo entities.Photo) error {
	query := `
		INSERT INTO colis_photos (colis_id, url, description, type, date_upload)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, query, colisID, photo.URL, photo.Description, photo.Type, photo.DateUpload)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return colis.ErrColisNotFound
		}
		return fmt.Errorf("unexpected colis repository appendphoto error: %w", err)
	}

	return nil
}

func (r *Repository) SetSignature(ctx context.Context, colisID int64, phase entities.SignaturePhase, signature entities.Signature) error {
	var query string
	switch phase {
	case entities.PhaseRecuperation:
		query = `
			UPDATE colis
			SET signature_recuperation_nom = $1,
				signature_recuperation_data = $2,
				signature_recuperation_date = $3,
				updated_at = NOW()
			WHERE id = $4`
	case entities.PhaseLivraison:
		query = `
			UPDATE colis
			SET signature_livraison_nom = $1,
				signature_livraison_data = $2,
				signature_livraison_date = $3,
				updated_at = NOW()
			WHERE id = $4`
	default:
		return colis.ErrInvalidPhase
	}

	result, err := r.querier.Exec(ctx, query, signature.Nom, signature.Signature, signature.Date, colisID)
	if err != nil {
		return fmt.Errorf("unexpected colis repository setsignature error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return colis.ErrColisNotFound
	}

	return nil
}

func (r *Repository) AppendIncident(ctx context.Context, colisID int64, incident entities.Incident) (*entities.Incident, error) {
	query := `
		INSERT INTO colis_problemes (colis_id, type, description, date, resolu)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, colis_id, type, description, date, resolu, solution`

	var incidentModel IncidentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		colisID,
		incident.Type.String(),
		incident.Description,
		incident.Date,
		incident.Resolu,
	).Scan(
		&incidentModel.ID,
		&incidentModel.ColisID,
		&incidentModel.Type,
		&incidentModel.Description,
		&incidentModel.Date,
		&incidentModel.Resolu,
		&incidentModel.Solution,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, colis.ErrColisNotFound
		}
		return nil, fmt.Errorf("unexpected colis repository appendincident error: %w", err)
	}

	return ToIncidentDomain(&incidentModel), nil
}

func (r *Repository) ResolveIncident(ctx context.Context, colisID, incidentID int64, solution string) (*entities.Incident, error) {
	query := `
		UPDATE colis_problemes
		SET resolu = TRUE, solution = $1
		WHERE id = $2 AND colis_id = $3 AND resolu = FALSE
		RETURNING id, colis_id, type, description, date, resolu, solution`

	var incidentModel IncidentDB
	err := r.querier.QueryRow(ctx, query, solution, incidentID, colisID).Scan(
		&incidentModel.ID,
		&incidentModel.ColisID,
		&incidentModel.Type,
		&incidentModel.Description,
		&incidentModel.Date,
		&incidentModel.Resolu,
		&incidentModel.Solution,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var resolu bool
			err = r.querier.QueryRow(
				ctx,
				`SELECT resolu FROM colis_problemes WHERE id = $1 AND colis_id = $2`,
				incidentID, colisID,
			).Scan(&resolu)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, colis.ErrIncidentNotFound
				}
				return nil, fmt.Errorf("unexpected colis repository resolveincident error: %w", err)
			}
			return nil, colis.ErrIncidentDejaResolu
		}
		return nil, fmt.Errorf("unexpected colis repository resolveincident error: %w", err)
	}

	return ToIncidentDomain(&incidentModel), nil
}

func (r *Repository) appendHistory(ctx context.Context, colisID int64, entry entities.StatusHistoryEntry) error {
	query := `
		INSERT INTO colis_historique_statuts (colis_id, statut, date, commentaire, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)`

	var latitude, longitude *float64
	if entry.Position != nil {
		latitude = &entry.Position.Latitude
		longitude = &entry.Position.Longitude
	}

	_, err := r.querier.Exec(ctx, query, colisID, entry.Statut.String(), entry.Date, entry.Commentaire, latitude, longitude)
	if err != nil {
		return fmt.Errorf("unexpected colis repository appendhistory error: %w", err)
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Colis, error) {
	var colisModel ColisDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(scanTargets(&colisModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, colis.ErrColisNotFound
		}
		return nil, fmt.Errorf("unexpected colis repository get error: %w", err)
	}

	return r.assemble(ctx, &colisModel)
}

// assemble догружает append-only части агрегата: историю, фото, инциденты.
func (r *Repository) assemble(ctx context.Context, colisModel *ColisDB) (*entities.Colis, error) {
	history, err := r.listHistory(ctx, colisModel.ID)
	if err != nil {
		return nil, err
	}

	photos, err := r.listPhotos(ctx, colisModel.ID)
	if err != nil {
		return nil, err
	}

	incidents, err := r.listIncidents(ctx, colisModel.ID)
	if err != nil {
		return nil, err
	}

	colisDomain := ToDomain(colisModel)
	colisDomain.HistoriqueStatuts = ToHistoryDomain(history)
	colisDomain.Photos = ToPhotosDomain(photos)
	colisDomain.Problemes = ToIncidentsDomain(incidents)
	return colisDomain, nil
}

func (r *Repository) listHistory(ctx context.Context, colisID int64) ([]HistoryEntryDB, error) {
	query := `
		SELECT statut, date, commentaire, latitude, longitude
		FROM colis_historique_statuts
		WHERE colis_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, colisID)
	if err != nil {
		return nil, fmt.Errorf("unexpected colis repository listhistory error: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntryDB, 0, 8)
	for rows.Next() {
		var entry HistoryEntryDB
		err := rows.Scan(&entry.Statut, &entry.Date, &entry.Commentaire, &entry.Latitude, &entry.Longitude)
		if err != nil {
			return nil, fmt.Errorf("unexpected colis repository listhistory error: %w", err)
		}
		entries = append(entries, entry)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected colis repository listhistory error: %w", err)
	}

	return entries, nil
}

func (r *Repository) listPhotos(ctx context.Context, colisID int64) ([]PhotoDB, error) {
	query := `
		SELECT url, description, type, date_upload
		FROM colis_photos
		WHERE colis_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, colisID)
	if err != nil {
		return nil, fmt.Errorf("unexpected colis repository listphotos error: %w", err)
	}
	defer rows.Close()

	photos := make([]PhotoDB, 0, 4)
	for rows.Next() {
		var photo PhotoDB
		err := rows.Scan(&photo.URL, &photo.Description, &photo.Type, &photo.DateUpload)
		if err != nil {
			return nil, fmt.Errorf("unexpected colis repository listphotos error: %w", err)
		}
		photos = append(photos, photo)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected colis repository listphotos error: %w", err)
	}

	return photos, nil
}

func (r *Repository) listIncidents(ctx context.Context, colisID int64) ([]IncidentDB, error) {
	query := `
		SELECT id, colis_id, type, description, date, resolu, solution
		FROM colis_problemes
		WHERE colis_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, colisID)
	if err != nil {
		return nil, fmt.Errorf("unexpected colis repository listincidents error: %w", err)
	}
	defer rows.Close()

	incidents := make([]IncidentDB, 0, 4)
	for rows.Next() {
		var incident IncidentDB
		err := rows.Scan(
			&incident.ID,
			&incident.ColisID,
			&incident.Type,
			&incident.Description,
			&incident.Date,
			&incident.Resolu,
			&incident.Solution,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected colis repository listincidents error: %w", err)
		}
		incidents = append(incidents, incident)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected colis repository listincidents error: %w", err)
	}

	return incidents, nil
}

func scanTargets(c *ColisDB) []interface{} {
	return []interface{}{
		&c.ID,
		&c.Reference,
		&c.TrajetID,
		&c.DemandeID,
		&c.ExpediteurID,
		&c.Description,
		&c.Poids,
		&c.Longueur,
		&c.Largeur,
		&c.Hauteur,
		&c.ValeurDeclaree,
		&c.Type,
		&c.Statut,
		&c.DateRecuperation,
		&c.DateExpedition,
		&c.DateLivraison,
		&c.SignRecuperationNom,
		&c.SignRecuperationData,
		&c.SignRecuperationDate,
		&c.SignLivraisonNom,
		&c.SignLivraisonData,
		&c.SignLivraisonDate,
		&c.CodeRecuperation,
		&c.CodeLivraison,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}
