package handlers

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

var errEmptyDate = errors.New("empty date")

// formatos do <input type="datetime-local">, sem fuso
var localDateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// parseDateTimeInConsole lê a data/hora digitada no formulário. Sem fuso,
// vale o horário do salão; com fuso, vale o que veio.
func parseDateTimeInConsole(loc *time.Location, s string) (time.Time, error) {
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	ts, err := models.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	if ts.IsZero() {
		return time.Time{}, errEmptyDate
	}
	return ts.Time, nil
}

func parseDateInConsole(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
