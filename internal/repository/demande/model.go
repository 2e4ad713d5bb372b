package demande

import "time"

type DemandeDB struct {
	ID                           int64
	AnnonceID                    int64
	ExpediteurID                 int64
	Statut                       string
	Description                  string
	LieuRecuperation             string
	LieuLivraison                string
	ContactRecuperationNom       string
	ContactRecuperationTelephone string
	ContactLivraisonNom          string
	ContactLivraisonTelephone    string
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

type DemandeModifyDB struct {
	ID                           *int64
	AnnonceID                    *int64
	ExpediteurID                 *int64
	Statut                       *string
	Description                  *string
	LieuRecuperation             *string
	LieuLivraison                *string
	ContactRecuperationNom       *string
	ContactRecuperationTelephone *string
	ContactLivraisonNom          *string
	ContactLivraisonTelephone    *string
}
