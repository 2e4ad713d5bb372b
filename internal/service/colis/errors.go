package colis

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatut         = errors.New("invalid colis statut")
	ErrInvalidCargoType      = errors.New("invalid cargo type")
	ErrInvalidIncidentType   = errors.New("invalid incident type")
	ErrInvalidPhase          = errors.New("invalid signature phase")
	ErrInvalidPhoto          = errors.New("invalid photo")

	ErrColisNotFound    = errors.New("colis not found")
	ErrIncidentNotFound = errors.New("incident not found")

	ErrForbidden          = errors.New("actor is not allowed to mutate this colis")
	ErrInvalidTransition  = errors.New("custody transition not allowed from current statut")
	ErrColisTermine       = errors.New("colis is in a terminal statut")
	ErrColisDejaExistant  = errors.New("colis already exists for this demande")
	ErrIncidentDejaResolu = errors.New("incident already resolved")
	ErrStatutModifie      = errors.New("colis statut changed concurrently")
	ErrReferenceCollision = errors.New("could not generate a unique reference")
)
