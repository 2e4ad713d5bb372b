package annonces_get

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	annonces, err := h.service.GetAnnoncesActives(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Annonce, 0, len(annonces))
	for i := range annonces {
		response = append(response, toAnnonceDTO(&annonces[i]))
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

func parseFilter(query url.Values) (entities.AnnonceFilter, error) {
	var filter entities.AnnonceFilter

	if lieuDepart := query.Get("lieu_depart"); lieuDepart != "" {
		filter.LieuDepart = &lieuDepart
	}
	if lieuArrivee := query.Get("lieu_arrivee"); lieuArrivee != "" {
		filter.LieuArrivee = &lieuArrivee
	}
	if apres := query.Get("date_depart_apres"); apres != "" {
		parsed, err := time.Parse(time.RFC3339, apres)
		if err != nil {
			return entities.AnnonceFilter{}, err
		}
		filter.DateDepartApres = &parsed
	}
	if urgent := query.Get("est_urgent"); urgent != "" {
		estUrgent := urgent == "true"
		filter.EstUrgent = &estUrgent
	}

	return filter, nil
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
