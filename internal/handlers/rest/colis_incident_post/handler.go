package colis_incident_post

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

	var incidentCreateDTO dto.IncidentCreate
	err = json.NewDecoder(r.Body).Decode(&incidentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	incidentType := entities.IncidentType(incidentCreateDTO.Type)

	incident, err := h.service.ReportIncident(r.Context(), actor, id, incidentType, incidentCreateDTO.Description)
	if err != nil {
		switch {
		case errors.Is(err, colis.ErrInvalidIncidentType),
			errors.Is(err, colis.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, colis.ErrColisNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, colis.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toIncidentDTO(incident)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toIncidentDTO(i *entities.Incident) dto.Incident {
	return dto.Incident{
		ID:          i.ID,
		ColisID:     i.ColisID,
		Type:        i.Type.String(),
		Description: i.Description,
		Date:        i.Date,
		Resolu:      i.Resolu,
		Solution:    i.Solution,
	}
}
