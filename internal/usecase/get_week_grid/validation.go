package get_week_grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// parseWeekOf разбирает дату недели; пустая строка - сегодня
func parseWeekOf(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, nil
	}
	ref, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: week must be YYYY-MM-DD", ErrInvalidInput)
	}
	return ref, nil
}
