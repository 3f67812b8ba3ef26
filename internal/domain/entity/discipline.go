package entity

// Discipline classe les œuvres du catalogue (Mathématiques, Français, ...).
// Sert de clé de ventilation du chiffre d'affaires dans les rapports.
type Discipline struct {
	ID   string
	Name string
}
