package demande_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var demandeCreateDTO dto.DemandeCreate
	err := json.NewDecoder(r.Body).Decode(&demandeCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contactRecuperation := entities.Contact{
		Nom:       demandeCreateDTO.ContactRecuperation.Nom,
		Telephone: demandeCreateDTO.ContactRecuperation.Telephone,
	}
	contactLivraison := entities.Contact{
		Nom:       demandeCreateDTO.ContactLivraison.Nom,
		Telephone: demandeCreateDTO.ContactLivraison.Telephone,
	}
	demandeModify := entities.DemandeModify{
		AnnonceID:           &demandeCreateDTO.AnnonceID,
		Description:         &demandeCreateDTO.Description,
		LieuRecuperation:    &demandeCreateDTO.LieuRecuperation,
		LieuLivraison:       &demandeCreateDTO.LieuLivraison,
		ContactRecuperation: &contactRecuperation,
		ContactLivraison:    &contactLivraison,
	}

	demandeEntity, err := h.service.CreateDemande(r.Context(), actor, demandeModify)
	if err != nil {
		switch {
		case errors.Is(err, demande.ErrMissingRequiredFields),
			errors.Is(err, demande.ErrInvalidContact),
			errors.Is(err, demande.ErrInvalidPhone),
			errors.Is(err, demande.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, demande.ErrAnnonceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, demande.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, demande.ErrAnnonceNotActive),
			errors.Is(err, demande.ErrDemandeDejaActive):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDemandeDTO(demandeEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
