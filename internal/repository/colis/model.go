package colis

import "time"

type ColisDB struct {
	ID                   int64
	Reference            string
	TrajetID             int64
	DemandeID            int64
	ExpediteurID         int64
	Description          string
	Poids                float64
	Longueur             float64
	Largeur              float64
	Hauteur              float64
	ValeurDeclaree       float64
	Type                 string
	Statut               string
	DateRecuperation     *time.Time
	DateExpedition       *time.Time
	DateLivraison        *time.Time
	SignRecuperationNom  *string
	SignRecuperationData *string
	SignRecuperationDate *time.Time
	SignLivraisonNom     *string
	SignLivraisonData    *string
	SignLivraisonDate    *time.Time
	CodeRecuperation     string
	CodeLivraison        string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type HistoryEntryDB struct {
	Statut      string
	Date        time.Time
	Commentaire string
	Latitude    *float64
	Longitude   *float64
}

type PhotoDB struct {
	URL         string
	Description string
	Type        string
	DateUpload  time.Time
}

type IncidentDB struct {
	ID          int64
	ColisID     int64
	Type        string
	Description string
	Date        time.Time
	Resolu      bool
	Solution    *string
}
