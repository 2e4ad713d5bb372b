package colis_signature_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/colis"
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

	var signatureCreateDTO dto.SignatureCreate
	err = json.NewDecoder(r.Body).Decode(&signatureCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	phase := entities.SignaturePhase(signatureCreateDTO.Phase)
	signature := entities.Signature{
		Nom:       signatureCreateDTO.Nom,
		Signature: signatureCreateDTO.Signature,
		Date:      time.Now(),
	}

	err = h.service.RecordSignature(r.Context(), actor, id, phase, signature)
	if err != nil {
		switch {
		case errors.Is(err, colis.ErrInvalidPhase),
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

	w.WriteHeader(http.StatusCreated)
}
