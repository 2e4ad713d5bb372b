package evaluation

import "time"

type EvaluationDB struct {
	ID           int64
	DemandeID    int64
	ConducteurID int64
	ExpediteurID int64
	Note         int
	Commentaire  string
	Reponse      *string
	DateReponse  *time.Time
	CreatedAt    time.Time
}
