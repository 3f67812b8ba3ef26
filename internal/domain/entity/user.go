package entity

import "time"

// Rôles valides pour User.
const (
	RolePDG          = "PDG"
	RoleAuteur       = "AUTEUR"
	RoleConcepteur   = "CONCEPTEUR"
	RoleRepresentant = "REPRESENTANT"
	RolePartenaire   = "PARTENAIRE"
	RoleClient       = "CLIENT"
)

// Statuts de compte.
const (
	UserStatusActive    = "ACTIVE"
	UserStatusInactive  = "INACTIVE"
	UserStatusSuspended = "SUSPENDED"
)

// User représente un utilisateur de la plateforme (PDG, auteur, concepteur,
// représentant, partenaire ou client).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indique si role fait partie des rôles connus de la plateforme.
func ValidRole(role string) bool {
	switch role {
	case RolePDG, RoleAuteur, RoleConcepteur, RoleRepresentant, RolePartenaire, RoleClient:
		return true
	}
	return false
}
