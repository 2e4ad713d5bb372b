package colis

import (
	"time"

	"marketplace/internal/entities"
)

func ToDomain(c *ColisDB) *entities.Colis {
	if c == nil {
		return nil
	}
	return &entities.Colis{
		ID:           c.ID,
		Reference:    c.Reference,
		TrajetID:     c.TrajetID,
		DemandeID:    c.DemandeID,
		ExpediteurID: c.ExpediteurID,
		Description:  c.Description,
		Poids:        c.Poids,
		Dimensions: entities.Dimensions{
			Longueur: c.Longueur,
			Largeur:  c.Largeur,
			Hauteur:  c.Hauteur,
		},
		ValeurDeclaree:        c.ValeurDeclaree,
		Type:                  entities.ColisCargoType(c.Type),
		Statut:                entities.ColisStatusType(c.Statut),
		DateRecuperation:      c.DateRecuperation,
		DateExpedition:        c.DateExpedition,
		DateLivraison:         c.DateLivraison,
		SignatureRecuperation: toSignature(c.SignRecuperationNom, c.SignRecuperationData, c.SignRecuperationDate),
		SignatureLivraison:    toSignature(c.SignLivraisonNom, c.SignLivraisonData, c.SignLivraisonDate),
		CodeRecuperation:      c.CodeRecuperation,
		CodeLivraison:         c.CodeLivraison,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func toSignature(nom, data *string, date *time.Time) *entities.Signature {
	if nom == nil || data == nil || date == nil {
		return nil
	}
	return &entities.Signature{
		Nom:       *nom,
		Signature: *data,
		Date:      *date,
	}
}

func ToHistoryDomain(models []HistoryEntryDB) []entities.StatusHistoryEntry {
	entries := make([]entities.StatusHistoryEntry, 0, len(models))
	for _, m := range models {
		entry := entities.StatusHistoryEntry{
			Statut:      entities.ColisStatusType(m.Statut),
			Date:        m.Date,
			Commentaire: m.Commentaire,
		}
		if m.Latitude != nil && m.Longitude != nil {
			entry.Position = &entities.Position{
				Latitude:  *m.Latitude,
				Longitude: *m.Longitude,
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func ToPhotosDomain(models []PhotoDB) []entities.Photo {
	photos := make([]entities.Photo, 0, len(models))
	for _, m := range models {
		photos = append(photos, entities.Photo{
			URL:         m.URL,
			Description: m.Description,
			Type:        m.Type,
			DateUpload:  m.DateUpload,
		})
	}
	return photos
}

func ToIncidentDomain(m *IncidentDB) *entities.Incident {
	if m == nil {
		return nil
	}
	incident := &entities.Incident{
		ID:          m.ID,
		ColisID:     m.ColisID,
		Type:        entities.IncidentType(m.Type),
		Description: m.Description,
		Date:        m.Date,
		Resolu:      m.Resolu,
	}
	if m.Solution != nil {
		incident.Solution = *m.Solution
	}
	return incident
}

func ToIncidentsDomain(models []IncidentDB) []entities.Incident {
	incidents := make([]entities.Incident, 0, len(models))
	for i := range models {
		incidents = append(incidents, *ToIncidentDomain(&models[i]))
	}
	return incidents
}
