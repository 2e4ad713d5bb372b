package entities

import "time"

type Contact struct {
	Nom       string
	Telephone string
}

type Demande struct {
	ID                  int64
	AnnonceID           int64
	ExpediteurID        int64
	Statut              DemandeStatusType
	Description         string
	LieuRecuperation    string
	LieuLivraison       string
	ContactRecuperation Contact
	ContactLivraison    Contact
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DemandeStatusType string

const (
	DemandeEnAttente DemandeStatusType = "en_attente"
	DemandeAcceptee  DemandeStatusType = "acceptee"
	DemandeRefusee   DemandeStatusType = "refusee"
	DemandeEnCours   DemandeStatusType = "en_cours"
	DemandeLivree    DemandeStatusType = "livree"
	DemandeAnnulee   DemandeStatusType = "annulee"
)

func (s DemandeStatusType) String() string {
	return string(s)
}

func (s DemandeStatusType) IsTerminal() bool {
	switch s {
	case DemandeRefusee, DemandeLivree, DemandeAnnulee:
		return true
	default:
		return false
	}
}

// demandeTransitions - единственный источник правды для переходов деманды.
// Ребра вне этой карты запрещены.
var demandeTransitions = map[DemandeStatusType][]DemandeStatusType{
	DemandeEnAttente: {DemandeAcceptee, DemandeRefusee, DemandeAnnulee},
	DemandeAcceptee:  {DemandeEnCours, DemandeAnnulee},
	DemandeEnCours:   {DemandeLivree},
	DemandeRefusee:   {},
	DemandeLivree:    {},
	DemandeAnnulee:   {},
}

func (s DemandeStatusType) CanTransitionTo(next DemandeStatusType) bool {
	for _, allowed := range demandeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type DemandeModify struct {
	ID                  *int64
	AnnonceID           *int64
	ExpediteurID        *int64
	Statut              *DemandeStatusType
	Description         *string
	LieuRecuperation    *string
	LieuLivraison       *string
	ContactRecuperation *Contact
	ContactLivraison    *Contact
}
