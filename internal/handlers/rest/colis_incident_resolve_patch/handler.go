package colis_incident_resolve_patch

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

	vars := mux.Vars(r)
	colisID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	incidentID, err := strconv.ParseInt(vars["problemeId"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var resolveDTO dto.IncidentResolve
	err = json.NewDecoder(r.Body).Decode(&resolveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	incident, err := h.service.ResolveIncident(r.Context(), actor, colisID, incidentID, resolveDTO.Solution)
	if err != nil {
		switch {
		case errors.Is(err, colis.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, colis.ErrColisNotFound),
			errors.Is(err, colis.ErrIncidentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, colis.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, colis.ErrIncidentDejaResolu):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toIncidentDTO(incident)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
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
