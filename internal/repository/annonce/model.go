package annonce

import "time"

type AnnonceDB struct {
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
	Statut          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AnnonceModifyDB struct {
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
	Statut          *string
}
