package colis_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/colis"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statutUpdateDTO dto.ColisStatutUpdate
	err = json.NewDecoder(r.Body).Decode(&statutUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var position *entities.Position
	if statutUpdateDTO.Position != nil {
		position = &entities.Position{
			Latitude:  statutUpdateDTO.Position.Latitude,
			Longitude: statutUpdateDTO.Position.Longitude,
		}
	}

	next := entities.ColisStatusType(statutUpdateDTO.Statut)

	colisEntity, err := h.service.AdvanceCustody(r.Context(), actor, id, next, statutUpdateDTO.Commentaire, position)
	if err != nil {
		switch {
		case errors.Is(err, colis.ErrInvalidStatut):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, colis.ErrColisNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, colis.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, colis.ErrInvalidTransition),
			errors.Is(err, colis.ErrColisTermine),
			errors.Is(err, colis.ErrStatutModifie):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toColisDTO(colisEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toColisDTO(c *entities.Colis) dto.Colis {
	colisDTO := dto.Colis{
		ID:           c.ID,
		Reference:    c.Reference,
		TrajetID:     c.TrajetID,
		DemandeID:    c.DemandeID,
		ExpediteurID: c.ExpediteurID,
		Description:  c.Description,
		Poids:        c.Poids,
		Dimensions: dto.Dimensions{
			Longueur: c.Dimensions.Longueur,
			Largeur:  c.Dimensions.Largeur,
			Hauteur:  c.Dimensions.Hauteur,
		},
		ValeurDeclaree:   c.ValeurDeclaree,
		Type:             c.Type.String(),
		Statut:           c.Statut.String(),
		DateRecuperation: c.DateRecuperation,
		DateExpedition:   c.DateExpedition,
		DateLivraison:    c.DateLivraison,
		CodeRecuperation: c.CodeRecuperation,
		CodeLivraison:    c.CodeLivraison,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}

	colisDTO.Photos = make([]dto.Photo, 0, len(c.Photos))
	for _, p := range c.Photos {
		colisDTO.Photos = append(colisDTO.Photos, dto.Photo{
			URL:         p.URL,
			Description: p.Description,
			Type:        p.Type,
			DateUpload:  p.DateUpload,
		})
	}

	colisDTO.HistoriqueStatuts = make([]dto.StatusHistoryEntry, 0, len(c.HistoriqueStatuts))
	for _, e := range c.HistoriqueStatuts {
		entry := dto.StatusHistoryEntry{
			Statut:      e.Statut.String(),
			Date:        e.Date,
			Commentaire: e.Commentaire,
		}
		if e.Position != nil {
			entry.Position = &dto.Position{
				Latitude:  e.Position.Latitude,
				Longitude: e.Position.Longitude,
			}
		}
		colisDTO.HistoriqueStatuts = append(colisDTO.HistoriqueStatuts, entry)
	}

	colisDTO.Problemes = make([]dto.Incident, 0, len(c.Problemes))
	for _, p := range c.Problemes {
		colisDTO.Problemes = append(colisDTO.Problemes, dto.Incident{
			ID:          p.ID,
			ColisID:     p.ColisID,
			Type:        p.Type.String(),
			Description: p.Description,
			Date:        p.Date,
			Resolu:      p.Resolu,
			Solution:    p.Solution,
		})
	}

	if c.SignatureRecuperation != nil {
		colisDTO.SignatureRecuperation = &dto.Signature{
			Nom:       c.SignatureRecuperation.Nom,
			Signature: c.SignatureRecuperation.Signature,
			Date:      c.SignatureRecuperation.Date,
		}
	}
	if c.SignatureLivraison != nil {
		colisDTO.SignatureLivraison = &dto.Signature{
			Nom:       c.SignatureLivraison.Nom,
			Signature: c.SignatureLivraison.Signature,
			Date:      c.SignatureLivraison.Date,
		}
	}

	return colisDTO
}
