package entities

import "time"

type Colis struct {
	ID                    int64
	Reference             string
	TrajetID              int64
	DemandeID             int64
	ExpediteurID          int64
	Description           string
	Poids                 float64
	Dimensions            Dimensions
	ValeurDeclaree        float64
	Type                  ColisCargoType
	Statut                ColisStatusType
	DateRecuperation      *time.Time
	DateExpedition        *time.Time
	DateLivraison         *time.Time
	Photos                []Photo
	SignatureRecuperation *Signature
	SignatureLivraison    *Signature
	HistoriqueStatuts     []StatusHistoryEntry
	Problemes             []Incident
	CodeRecuperation      string
	CodeLivraison         string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Dimensions struct {
	Longueur float64
	Largeur  float64
	Hauteur  float64
}

type ColisCargoType string

const (
	CargoFragile      ColisCargoType = "fragile"
	CargoNormale      ColisCargoType = "normale"
	CargoDangereuse   ColisCargoType = "dangereuse"
	CargoAlimentaire  ColisCargoType = "alimentaire"
	CargoElectronique ColisCargoType = "electronique"
	CargoAutre        ColisCargoType = "autre"
)

const DefaultCargoType = CargoNormale

func (t ColisCargoType) String() string {
	return string(t)
}

func (t ColisCargoType) IsValid() bool {
	switch t {
	case CargoFragile, CargoNormale, CargoDangereuse, CargoAlimentaire, CargoElectronique, CargoAutre:
		return true
	default:
		return false
	}
}

type ColisStatusType string

const (
	ColisEnAttenteRecuperation ColisStatusType = "en_attente_recuperation"
	ColisRecupere              ColisStatusType = "recupere"
	ColisEnTransit             ColisStatusType = "en_transit"
	ColisEnLivraison           ColisStatusType = "en_livraison"
	ColisLivre                 ColisStatusType = "livre"
	ColisPerdu                 ColisStatusType = "perdu"
	ColisEndommage             ColisStatusType = "endommage"
	ColisRefuse                ColisStatusType = "refuse"
)

func (s ColisStatusType) String() string {
	return string(s)
}

func (s ColisStatusType) IsTerminal() bool {
	switch s {
	case ColisLivre, ColisPerdu, ColisEndommage, ColisRefuse:
		return true
	default:
		return false
	}
}

func (s ColisStatusType) IsValid() bool {
	switch s {
	case ColisEnAttenteRecuperation, ColisRecupere, ColisEnTransit, ColisEnLivraison,
		ColisLivre, ColisPerdu, ColisEndommage, ColisRefuse:
		return true
	default:
		return false
	}
}

// custodyTransitions - линейная цепочка владения. Исключительные терминальные
// состояния (perdu/endommage/refuse) достижимы из любого нетерминального,
// см. CanTransitionTo.
var custodyTransitions = map[ColisStatusType]ColisStatusType{
	ColisEnAttenteRecuperation: ColisRecupere,
	ColisRecupere:              ColisEnTransit,
	ColisEnTransit:             ColisEnLivraison,
	ColisEnLivraison:           ColisLivre,
}

func (s ColisStatusType) CanTransitionTo(next ColisStatusType) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case ColisPerdu, ColisEndommage, ColisRefuse:
		return true
	default:
		return custodyTransitions[s] == next
	}
}

type StatusHistoryEntry struct {
	Statut      ColisStatusType
	Date        time.Time
	Commentaire string
	Position    *Position
}

type Position struct {
	Latitude  float64
	Longitude float64
}

type Photo struct {
	URL         string
	Description string
	DateUpload  time.Time
	Type        string
}

type SignaturePhase string

const (
	PhaseRecuperation SignaturePhase = "recuperation"
	PhaseLivraison    SignaturePhase = "livraison"
)

type Signature struct {
	Nom       string
	Signature string
	Date      time.Time
}

type IncidentType string

const (
	IncidentRetard         IncidentType = "retard"
	IncidentDommage        IncidentType = "dommage"
	IncidentPerte          IncidentType = "perte"
	IncidentRefusLivraison IncidentType = "refus_livraison"
	IncidentAutre          IncidentType = "autre"
)

func (t IncidentType) String() string {
	return string(t)
}

func (t IncidentType) IsValid() bool {
	switch t {
	case IncidentRetard, IncidentDommage, IncidentPerte, IncidentRefusLivraison, IncidentAutre:
		return true
	default:
		return false
	}
}

type Incident struct {
	ID          int64
	ColisID     int64
	Type        IncidentType
	Description string
	Date        time.Time
	Resolu      bool
	Solution    string
}

type ColisModify struct {
	ID                    *int64
	Reference             *string
	TrajetID              *int64
	DemandeID             *int64
	ExpediteurID          *int64
	Description           *string
	Poids                 *float64
	Dimensions            *Dimensions
	ValeurDeclaree        *float64
	Type                  *ColisCargoType
	Statut                *ColisStatusType
	CodeRecuperation      *string
	CodeLivraison         *string
	SignatureRecuperation *Signature
	SignatureLivraison    *Signature
}
