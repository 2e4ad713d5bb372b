package entities

type RoleType string

const (
	RoleConducteur RoleType = "conducteur"
	RoleExpediteur RoleType = "expediteur"
	RoleAdmin      RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) IsValid() bool {
	switch r {
	case RoleConducteur, RoleExpediteur, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor приходит от identity-коллаборатора уже проверенным,
// сервис доверяет полям как есть.
type Actor struct {
	ID   int64
	Role RoleType
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
