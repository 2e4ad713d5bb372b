package demande_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	demandeEntity, err := h.service.GetDemande(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, demande.ErrDemandeNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, demande.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDemandeDTO(demandeEntity)

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
