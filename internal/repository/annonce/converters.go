package annonce

import "marketplace/internal/entities"

func ToDomain(a *AnnonceDB) *entities.Annonce {
	if a == nil {
		return nil
	}
	return &entities.Annonce{
		ID:              a.ID,
		ConducteurID:    a.ConducteurID,
		LieuDepart:      a.LieuDepart,
		LieuArrivee:     a.LieuArrivee,
		Etapes:          a.Etapes,
		DateDepart:      a.DateDepart,
		CapacitePoids:   a.CapacitePoids,
		CapaciteVolume:  a.CapaciteVolume,
		Prix:            a.Prix,
		TypeMarchandise: a.TypeMarchandise,
		EstUrgent:       a.EstUrgent,
		Statut:          entities.AnnonceStatusType(a.Statut),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ToDomainList(models []AnnonceDB) []entities.Annonce {
	annonces := make([]entities.Annonce, 0, len(models))
	for i := range models {
		annonces = append(annonces, *ToDomain(&models[i]))
	}
	return annonces
}

func FromDomainModify(a *entities.AnnonceModify) *AnnonceModifyDB {
	if a == nil {
		return nil
	}
	annonceModifyDB := &AnnonceModifyDB{}

	if a.ID != nil {
		annonceModifyDB.ID = a.ID
	}
	if a.ConducteurID != nil {
		annonceModifyDB.ConducteurID = a.ConducteurID
	}
	if a.LieuDepart != nil {
		annonceModifyDB.LieuDepart = a.LieuDepart
	}
	if a.LieuArrivee != nil {
		annonceModifyDB.LieuArrivee = a.LieuArrivee
	}
	if a.Etapes != nil {
		annonceModifyDB.Etapes = a.Etapes
	}
	if a.DateDepart != nil {
		annonceModifyDB.DateDepart = a.DateDepart
	}
	if a.CapacitePoids != nil {
		annonceModifyDB.CapacitePoids = a.CapacitePoids
	}
	if a.CapaciteVolume != nil {
		annonceModifyDB.CapaciteVolume = a.CapaciteVolume
	}
	if a.Prix != nil {
		annonceModifyDB.Prix = a.Prix
	}
	if a.TypeMarchandise != nil {
		annonceModifyDB.TypeMarchandise = a.TypeMarchandise
	}
	if a.EstUrgent != nil {
		annonceModifyDB.EstUrgent = a.EstUrgent
	}
	if a.Statut != nil {
		statut := a.Statut.String()
		annonceModifyDB.Statut = &statut
	}

	return annonceModifyDB
}
