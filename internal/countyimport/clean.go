package countyimport

import (
	"strconv"
	"strings"
	"time"
)

// CleanValue normalizes a raw CSV cell. Empty cells, the literal
// two-character string `""`, and cells that are blank after stripping
// surrounding whitespace and quotes all normalize to nil.
func CleanValue(raw string) *string {
	if raw == "" || raw == `""` {
		return nil
	}

	v := strings.TrimSpace(raw)
	v = strings.Trim(v, `"`)
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// dateLayouts are tried in order by ParseDate. County exports mix ISO
// dates with US-style slash dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"20060102",
}

// ParseDate parses a date-like cell permissively. Unparseable or empty
// values normalize to nil rather than failing the row.
func ParseDate(raw string) *time.Time {
	v := CleanValue(raw)
	if v == nil {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *v); err == nil {
			return &t
		}
	}
	return nil
}

// ParseFloat parses a numeric cell, tolerating thousands separators and
// currency prefixes. Unparseable values normalize to nil.
func ParseFloat(raw string) *float64 {
	v := CleanValue(raw)
	if v == nil {
		return nil
	}

	s := strings.ReplaceAll(*v, ",", "")
	s = strings.TrimPrefix(s, "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseInt parses an integer cell. County files sometimes carry integer
// columns as decimals ("1975.0"), so a float parse is accepted and
// truncated. Unparseable values normalize to nil.
func ParseInt(raw string) *int {
	v := CleanValue(raw)
	if v == nil {
		return nil
	}

	if n, err := strconv.Atoi(*v); err == nil {
		return &n
	}
	if f := ParseFloat(raw); f != nil {
		n := int(*f)
		return &n
	}
	return nil
}
