package finance

import (
	"fmt"
	"time"
)

// ParsePeriod convertit les bornes YYYY-MM-DD optionnelles en time.Time.
// La borne de fin est poussée à 23:59:59.999 pour inclure toute la journée ;
// une vente créée une milliseconde après est exclue.
func ParsePeriod(startStr, endStr string) (start, end *time.Time, err error) {
	loc := time.Now().Location()

	if startStr != "" {
		s, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("startDate invalide : %w", err)
		}
		start = &s
	}

	if endStr != "" {
		e, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("endDate invalide : %w", err)
		}
		e = time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
		end = &e
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fmt.Errorf("startDate postérieure à endDate")
	}
	return start, end, nil
}
