package search

import (
	"strconv"
	"strings"

	"fscmd/internal/domain"
)

// sizeUnits maps suffixes to binary multipliers, longest suffix first
// so "KB" is never mis-read as a bare "B".
//
//nolint:gochecknoglobals // Package-level constants for unit parsing
var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"TB", 1 << 40},
	{"B", 1},
}

// ParseSizeFilter parses a human size spec such as ">1MB" or "<=2KB".
// The comparison operator defaults to ">" when omitted; a suffix-less
// number is read as raw bytes. An unparsable number degenerates to the
// permissive filter (>, 0) that matches every size, rather than
// failing the enclosing operation.
func ParseSizeFilter(spec string) domain.SizeFilter {
	spec = strings.ToUpper(strings.TrimSpace(spec))

	op := ">"
	switch {
	case strings.HasPrefix(spec, ">="):
		op, spec = ">=", spec[2:]
	case strings.HasPrefix(spec, "<="):
		op, spec = "<=", spec[2:]
	case strings.HasPrefix(spec, ">"):
		spec = spec[1:]
	case strings.HasPrefix(spec, "<"):
		op, spec = "<", spec[1:]
	}

	for _, unit := range sizeUnits {
		if !strings.HasSuffix(spec, unit.suffix) {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSuffix(spec, unit.suffix), 64)
		if err != nil {
			return domain.SizeFilter{Op: ">", Threshold: 0}
		}
		return domain.SizeFilter{Op: op, Threshold: int64(value * float64(unit.multiplier))}
	}

	value, err := strconv.ParseInt(spec, 10, 64)
	if err != nil {
		return domain.SizeFilter{Op: ">", Threshold: 0}
	}
	return domain.SizeFilter{Op: op, Threshold: value}
}
