package evaluation

import "marketplace/internal/entities"

func ToDomain(e *EvaluationDB) *entities.Evaluation {
	if e == nil {
		return nil
	}
	return &entities.Evaluation{
		ID:           e.ID,
		DemandeID:    e.DemandeID,
		ConducteurID: e.ConducteurID,
		ExpediteurID: e.ExpediteurID,
		Note:         e.Note,
		Commentaire:  e.Commentaire,
		Reponse:      e.Reponse,
		DateReponse:  e.DateReponse,
		CreatedAt:    e.CreatedAt,
	}
}

func ToDomainList(models []EvaluationDB) []entities.Evaluation {
	evaluations := make([]entities.Evaluation, 0, len(models))
	for i := range models {
		evaluations = append(evaluations, *ToDomain(&models[i]))
	}
	return evaluations
}
