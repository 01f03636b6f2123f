package task

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain"
)

const day = 24 * time.Hour

// durationPattern accepts relative times such as "1w2d3h4m5s" or "2d 6h".
// Every unit is optional but they must appear in w, d, h, m, s order.
var durationPattern = regexp.MustCompile(
	`^(?:(\d+)w)?\s*(?:(\d+)d)?\s*(?:(\d+)h)?\s*(?:(\d+)m)?\s*(?:(\d+)s)?$`,
)

var durationUnits = [...]time.Duration{7 * day, day, time.Hour, time.Minute, time.Second}

// ParseDuration converts a human relative time into a positive duration.
// Returns a *domain.ValidationError for empty, malformed, or zero input.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, domain.NewValidationError("due_in", domain.MsgRequired)
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, domain.NewValidationError("due_in", "must look like 1w2d3h4m5s")
	}

	var total time.Duration
	for i, unit := range durationUnits {
		raw := m[i+1]
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, domain.NewValidationError("due_in", "number out of range")
		}
		total += time.Duration(n) * unit
	}

	if total <= 0 {
		return 0, domain.NewValidationError("due_in", "must be greater than zero")
	}
	return total, nil
}
