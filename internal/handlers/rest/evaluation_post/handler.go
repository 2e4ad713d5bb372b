package evaluation_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/evaluation"
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

	var evaluationCreateDTO dto.EvaluationCreate
	err := json.NewDecoder(r.Body).Decode(&evaluationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	evaluationEntity, err := h.service.CreateEvaluation(
		r.Context(),
		actor,
		evaluationCreateDTO.DemandeID,
		evaluationCreateDTO.Note,
		evaluationCreateDTO.Commentaire,
	)
	if err != nil {
		switch {
		case errors.Is(err, evaluation.ErrMissingRequiredFields),
			errors.Is(err, evaluation.ErrInvalidNote):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, evaluation.ErrDemandeNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, evaluation.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, evaluation.ErrDemandeNonLivree),
			errors.Is(err, evaluation.ErrEvaluationExistant):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toEvaluationDTO(evaluationEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
