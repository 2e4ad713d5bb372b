package entities

import "time"

type Annonce struct {
	ID              int64
	ConducteurID    int64
	LieuDepart      string
	LieuArrivee     string
	Etapes          []string
	DateDepart      time.Time
	CapacitePoids   float64
	CapaciteVolume  float64
	Prix            float64
	TypeMarchandise string
	EstUrgent       bool
	Statut          AnnonceStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AnnonceStatusType string

const (
	AnnonceActive   AnnonceStatusType = "active"
	AnnonceEnCours  AnnonceStatusType = "en_cours"
	AnnonceConfirme AnnonceStatusType = "confirme"
	AnnonceTermine  AnnonceStatusType = "termine"
	AnnonceAnnule   AnnonceStatusType = "annule"
)

func (s AnnonceStatusType) String() string {
	return string(s)
}

func (s AnnonceStatusType) IsTerminal() bool {
	return s == AnnonceTermine || s == AnnonceAnnule
}

// annonceTransitions - статус монотонный, annule достижим из любого
// нетерминального состояния.
var annonceTransitions = map[AnnonceStatusType][]AnnonceStatusType{
	AnnonceActive:   {AnnonceEnCours, AnnonceConfirme, AnnonceTermine, AnnonceAnnule},
	AnnonceEnCours:  {AnnonceConfirme, AnnonceTermine, AnnonceAnnule},
	AnnonceConfirme: {AnnonceTermine, AnnonceAnnule},
	AnnonceTermine:  {},
	AnnonceAnnule:   {},
}

func (s AnnonceStatusType) CanTransitionTo(next AnnonceStatusType) bool {
	for _, allowed := range annonceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type AnnonceModify struct {
	ID              *int64
	ConducteurID    *int64
	LieuDepart      *string
	LieuArrivee     *string
	Etapes          *[]string
	DateDepart      *time.Time
	CapacitePoids   *float64
	CapaciteVolume  *float64
	Prix            *float64
	TypeMarchandise *string
	EstUrgent       *bool
	Statut          *AnnonceStatusType
}

// AnnonceFilter - опциональные критерии публичного поиска по активным
// аннонсам. nil-поле не участвует в выборке.
type AnnonceFilter struct {
	LieuDepart      *string
	LieuArrivee     *string
	DateDepartApres *time.Time
	EstUrgent       *bool
}
