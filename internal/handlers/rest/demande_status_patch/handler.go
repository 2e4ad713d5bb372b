package demande_status_patch

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

	var statutUpdateDTO dto.DemandeStatutUpdate
	err = json.NewDecoder(r.Body).Decode(&statutUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// целевой статус определяет операцию жизненного цикла
	var demandeEntity *entities.Demande
	switch entities.DemandeStatusType(statutUpdateDTO.Statut) {
	case entities.DemandeAcceptee:
		demandeEntity, err = h.service.RespondToDemande(r.Context(), actor, id, demande.DecisionAccept)
	case entities.DemandeRefusee:
		demandeEntity, err = h.service.RespondToDemande(r.Context(), actor, id, demande.DecisionRefuse)
	case entities.DemandeEnCours:
		demandeEntity, err = h.service.StartTransit(r.Context(), actor, id)
	case entities.DemandeLivree:
		demandeEntity, err = h.service.CompleteDemande(r.Context(), actor, id)
	case entities.DemandeAnnulee:
		demandeEntity, err = h.service.CancelDemande(r.Context(), actor, id)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, demande.ErrInvalidDecision):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, demande.ErrDemandeNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, demande.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, demande.ErrInvalidTransition),
			errors.Is(err, demande.ErrColisNotDelivered),
			errors.Is(err, demande.ErrStatutModifie):
			w.WriteHeader(http.StatusConflict)
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
