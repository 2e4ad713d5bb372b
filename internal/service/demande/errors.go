package demande

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidContact        = errors.New("invalid contact")
	ErrInvalidPhone          = errors.New("invalid phone format")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidDecision       = errors.New("invalid decision")

	ErrDemandeNotFound = errors.New("demande not found")
	ErrAnnonceNotFound = errors.New("annonce not found")

	ErrForbidden         = errors.New("actor is not allowed to perform this transition")
	ErrAnnonceNotActive  = errors.New("annonce is not active")
	ErrInvalidTransition = errors.New("transition not allowed from current statut")
	ErrColisNotDelivered = errors.New("colis is not in statut livre")
	ErrDemandeDejaActive = errors.New("expediteur already has a non-terminal demande for this annonce")
	ErrStatutModifie     = errors.New("demande statut changed concurrently")
)
