package task

import (
	"fmt"
	"strconv"
	"strings"
)

// maxOffsetDays bounds relative offsets so the result stays within the
// years the YYYY-MM-DD wire format can represent.
const maxOffsetDays = 9999 * 366

// ResolveDateSpec turns a date specification into a concrete date. A spec
// is either a relative offset counted from base, an integer suffixed with
// "d" (days) or "w" (weeks), or an absolute YYYY-MM-DD date. Anything else
// fails with ErrInvalidDateSpec. Pure function of its inputs.
func ResolveDateSpec(spec string, base Date) (Date, error) {
	if num, ok := strings.CutSuffix(spec, "d"); ok {
		return resolveOffset(spec, num, 1, base)
	}
	if num, ok := strings.CutSuffix(spec, "w"); ok {
		return resolveOffset(spec, num, 7, base)
	}
	d, err := ParseDate(spec)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateSpec, spec)
	}
	return d, nil
}

func resolveOffset(spec, num string, unit int64, base Date) (Date, error) {
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateSpec, spec)
	}
	days := n * unit
	if n != 0 && (days/n != unit || days > maxOffsetDays || days < -maxOffsetDays) {
		return Date{}, fmt.Errorf("%w: %q overflows the date range", ErrInvalidDateSpec, spec)
	}
	d := base.AddDays(int(days))
	if d.Year() < 1 || d.Year() > 9999 {
		return Date{}, fmt.Errorf("%w: %q overflows the date range", ErrInvalidDateSpec, spec)
	}
	return d, nil
}
