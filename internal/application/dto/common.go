package dto

// ErrorResponse corps d'erreur HTTP. Le dashboard n'attend que ce champ.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PageRequest pagination des listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage applique les valeurs par défaut si Limit/Offset sont à zéro.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PeriodDTO bornes de période telles que reçues (YYYY-MM-DD, vides si absentes).
type PeriodDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
