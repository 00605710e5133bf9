package finance

import (
	"strings"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

func ParseStatus(raw string) (models.FinanceStatus, error) {
	s := models.FinanceStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case "":
		return models.FinancePending, nil
	case models.FinancePending, models.FinancePaid, models.FinanceCanceled:
		return s, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Counts reports whether the entry contributes to revenue.
func Counts(e models.FinanceEntry) bool {
	return e.Status == models.FinancePaid
}
