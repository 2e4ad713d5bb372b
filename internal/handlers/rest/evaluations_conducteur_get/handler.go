package evaluations_conducteur_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	evaluations, err := h.service.GetEvaluationsConducteur(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Evaluation, 0, len(evaluations))
	for i := range evaluations {
		response = append(response, toEvaluationDTO(&evaluations[i]))
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

func toEvaluationDTO(e *entities.Evaluation) dto.Evaluation {
	return dto.Evaluation{
		ID:           e.ID,
		DemandeID:    e.DemandeID,
		ConducteurID: e.ConducteurID,
		ExpediteurID: e.ExpediteurID,
		Note:         e.Note,
		Commentaire:  e.Commentaire,
		Reponse:      e.Reponse,
		DateReponse:  e.DateReponse,
		CreatedAt:    e.CreatedAt,
	}
}
