package evaluation

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidNote           = errors.New("note must be between 1 and 5")

	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrDemandeNotFound    = errors.New("demande not found")

	ErrForbidden          = errors.New("actor is not allowed to mutate this evaluation")
	ErrDemandeNonLivree   = errors.New("demande is not livree")
	ErrEvaluationExistant = errors.New("evaluation already exists for this demande")
	ErrDejaRepondu        = errors.New("evaluation already has a reply")
)
