package annonce_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var annonceCreateDTO dto.AnnonceCreate
	err := json.NewDecoder(r.Body).Decode(&annonceCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	annonceModify := entities.AnnonceModify{
		LieuDepart:      &annonceCreateDTO.LieuDepart,
		LieuArrivee:     &annonceCreateDTO.LieuArrivee,
		Etapes:          &annonceCreateDTO.Etapes,
		DateDepart:      &annonceCreateDTO.DateDepart,
		CapacitePoids:   &annonceCreateDTO.CapacitePoids,
		CapaciteVolume:  &annonceCreateDTO.CapaciteVolume,
		Prix:            &annonceCreateDTO.Prix,
		TypeMarchandise: &annonceCreateDTO.TypeMarchandise,
		EstUrgent:       &annonceCreateDTO.EstUrgent,
	}

	annonceEntity, err := h.service.CreateAnnonce(r.Context(), actor, annonceModify)
	if err != nil {
		switch {
		case errors.Is(err, annonce.ErrMissingRequiredFields),
			errors.Is(err, annonce.ErrInvalidRoute),
			errors.Is(err, annonce.ErrInvalidCapacity),
			errors.Is(err, annonce.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, annonce.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toAnnonceDTO(annonceEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
