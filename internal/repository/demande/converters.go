package demande

import "marketplace/internal/entities"

func ToDomain(d *DemandeDB) *entities.Demande {
	if d == nil {
		return nil
	}
	return &entities.Demande{
		ID:               d.ID,
		AnnonceID:        d.AnnonceID,
		ExpediteurID:     d.ExpediteurID,
		Statut:           entities.DemandeStatusType(d.Statut),
		Description:      d.Description,
		LieuRecuperation: d.LieuRecuperation,
		LieuLivraison:    d.LieuLivraison,
		ContactRecuperation: entities.Contact{
			Nom:       d.ContactRecuperationNom,
			Telephone: d.ContactRecuperationTelephone,
		},
		ContactLivraison: entities.Contact{
			Nom:       d.ContactLivraisonNom,
			Telephone: d.ContactLivraisonTelephone,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToDomainList(models []DemandeDB) []entities.Demande {
	demandes := make([]entities.Demande, 0, len(models))
	for i := range models {
		demandes = append(demandes, *ToDomain(&models[i]))
	}
	return demandes
}

func FromDomainModify(d *entities.DemandeModify) *DemandeModifyDB {
	if d == nil {
		return nil
	}
	demandeModifyDB := &DemandeModifyDB{}

	if d.ID != nil {
		demandeModifyDB.ID = d.ID
	}
	if d.AnnonceID != nil {
		demandeModifyDB.AnnonceID = d.AnnonceID
	}
	if d.ExpediteurID != nil {
		demandeModifyDB.ExpediteurID = d.ExpediteurID
	}
	if d.Statut != nil {
		statut := d.Statut.String()
		demandeModifyDB.Statut = &statut
	}
	if d.Description != nil {
		demandeModifyDB.Description = d.Description
	}
	if d.LieuRecuperation != nil {
		demandeModifyDB.LieuRecuperation = d.LieuRecuperation
	}
	if d.LieuLivraison != nil {
		demandeModifyDB.LieuLivraison = d.LieuLivraison
	}
	if d.ContactRecuperation != nil {
		demandeModifyDB.ContactRecuperationNom = &d.ContactRecuperation.Nom
		demandeModifyDB.ContactRecuperationTelephone = &d.ContactRecuperation.Telephone
	}
	if d.ContactLivraison != nil {
		demandeModifyDB.ContactLivraisonNom = &d.ContactLivraison.Nom
		demandeModifyDB.ContactLivraisonTelephone = &d.ContactLivraison.Telephone
	}

	return demandeModifyDB
}
