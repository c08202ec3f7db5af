package timing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidDuration is wrapped by every ParseDuration failure
var ErrInvalidDuration = errors.New("invalid duration")

// MaxDuration is the longest accepted duration, leaving room for DisplayPad
const MaxDuration = time.Duration(math.MaxInt64) - DisplayPad

var units = map[string]time.Duration{
	"ms": time.Millisecond, "msec": time.Millisecond, "msecs": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,
	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour,
	"hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
}

// ParseDuration parses free-form durations such as "5m 30s", "1h", "90",
// "2 minutes, 10 seconds" or the clock notation "1:30" and "1:02:03".
// A number without a unit counts as seconds.
func ParseDuration(s string) (time.Duration, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return 0, fmt.Errorf("empty string: %w", ErrInvalidDuration)
	}

	if strings.Contains(input, ":") {
		return parseClock(s, input)
	}

	var total float64
	rest := input
	for {
		rest = strings.TrimLeftFunc(rest, func(r rune) bool {
			return unicode.IsSpace(r) || r == ','
		})
		rest = strings.TrimPrefix(rest, "and ")
		if rest == "" {
			break
		}

		numEnd := strings.IndexFunc(rest, func(r rune) bool {
			return !unicode.IsDigit(r) && r != '.'
		})
		if numEnd == -1 {
			numEnd = len(rest)
		}
		if numEnd == 0 {
			return 0, fmt.Errorf("%q: expected a number at %q: %w", s, rest, ErrInvalidDuration)
		}
		value, err := strconv.ParseFloat(rest[:numEnd], 64)
		if err != nil {
			return 0, fmt.Errorf("%q: bad number %q: %w", s, rest[:numEnd], ErrInvalidDuration)
		}
		rest = strings.TrimLeftFunc(rest[numEnd:], unicode.IsSpace)

		unitEnd := strings.IndexFunc(rest, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if unitEnd == -1 {
			unitEnd = len(rest)
		}
		unit := time.Second
		if unitEnd > 0 {
			var ok bool
			if unit, ok = units[rest[:unitEnd]]; !ok {
				return 0, fmt.Errorf("%q: unknown unit %q: %w", s, rest[:unitEnd], ErrInvalidDuration)
			}
		}
		rest = rest[unitEnd:]

		total += value * float64(unit)
		if total > float64(MaxDuration) {
			return 0, fmt.Errorf("%q: overflow: %w", s, ErrInvalidDuration)
		}
	}

	return time.Duration(total), nil
}

// parseClock handles "m:ss" and "h:mm:ss"
func parseClock(orig, input string) (time.Duration, error) {
	parts := strings.Split(input, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%q: too many fields: %w", orig, ErrInvalidDuration)
	}

	const maxSeconds = int64(MaxDuration / time.Second)

	var total int64
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%q: bad field %q: %w", orig, p, ErrInvalidDuration)
		}
		if n > maxSeconds || total > (maxSeconds-n)/60 {
			return 0, fmt.Errorf("%q: overflow: %w", orig, ErrInvalidDuration)
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, nil
}
