package colis_photo_post

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

	var photoCreateDTO dto.PhotoCreate
	err = json.NewDecoder(r.Body).Decode(&photoCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	photo := entities.Photo{
		URL:         photoCreateDTO.URL,
		Description: photoCreateDTO.Description,
		Type:        photoCreateDTO.Type,
	}

	err = h.service.AttachPhoto(r.Context(), actor, id, photo)
	if err != nil {
		switch {
		case errors.Is(err, colis.ErrInvalidPhoto):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, colis.ErrColisNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, colis.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, colis.ErrColisTermine):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}
