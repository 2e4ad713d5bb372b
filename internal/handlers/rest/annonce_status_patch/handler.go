package annonce_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/annonce"
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

	var statutUpdateDTO dto.AnnonceStatutUpdate
	err = json.NewDecoder(r.Body).Decode(&statutUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	next := entities.AnnonceStatusType(statutUpdateDTO.Statut)

	annonceEntity, err := h.service.UpdateStatut(r.Context(), actor, id, next)
	if err != nil {
		switch {
		case errors.Is(err, annonce.ErrInvalidStatut):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, annonce.ErrAnnonceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, annonce.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, annonce.ErrInvalidTransition),
			errors.Is(err, annonce.ErrStatutModifie):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toAnnonceDTO(annonceEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toAnnonceDTO(a *entities.Annonce) dto.Annonce {
	return dto.Annonce{
		ID:              a.ID,
		ConducteurID:    a.ConducteurID,
		LieuDepart:      a.LieuDepart,
		LieuArrivee:     a.LieuArrivee,
		Etapes:          a.Etapes,
		DateDepart:      a.DateDepart,
		CapacitePoids:   a.CapacitePoids,
		CapaciteVolume:  a.CapaciteVolume,
		Prix:            a.Prix,
		TypeMarchandise: a.TypeMarchandise,
		EstUrgent:       a.EstUrgent,
		Statut:          a.Statut.String(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
