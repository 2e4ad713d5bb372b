package annonce

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRoute          = errors.New("invalid route")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStatut         = errors.New("invalid annonce statut")

	ErrAnnonceNotFound = errors.New("annonce not found")

	ErrForbidden           = errors.New("actor is not allowed to mutate this annonce")
	ErrInvalidTransition   = errors.New("transition not allowed from current statut")
	ErrDemandesNonResolues = errors.New("annonce has unresolved or undelivered demandes")
	ErrStatutModifie       = errors.New("annonce statut changed concurrently")
)
