package demandes_mine_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/demande"
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

	demandes, err := h.service.GetDemandesExpediteur(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, demande.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Demande, 0, len(demandes))
	for i := range demandes {
		response = append(response, toDemandeDTO(&demandes[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDemandeDTO(d *entities.Demande) dto.Demande {
	return dto.Demande{
		ID:               d.ID,
		AnnonceID:        d.AnnonceID,
		ExpediteurID:     d.ExpediteurID,
		Statut:           d.Statut.String(),
		Description:      d.Description,
		LieuRecuperation: d.LieuRecuperation,
		LieuLivraison:    d.LieuLivraison,
		ContactRecuperation: dto.Contact{
			Nom:       d.ContactRecuperation.Nom,
			Telephone: d.ContactRecuperation.Telephone,
		},
		ContactLivraison: dto.Contact{
			Nom:       d.ContactLivraison.Nom,
			Telephone: d.ContactLivraison.Telephone,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
