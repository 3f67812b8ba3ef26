package entity

import "time"

// Types de partenaires revendeurs.
const (
	PartnerTypeLibrairie   = "LIBRAIRIE"
	PartnerTypeEcole       = "ECOLE"
	PartnerTypeDistributer = "DISTRIBUTEUR"
)

// Partner entité revendeuse (librairie, école, distributeur) avec son propre
// flux de commandes. Son statut d'activité dérive de l'utilisateur lié.
type Partner struct {
	ID        string
	Name      string
	Type      string
	UserID    *string
	CreatedAt time.Time
}
