package deck

import (
	"regexp"
	"strconv"
)

// ============================================================================
// DECK-NAME PARSING
// ============================================================================
// Deck names encode the period they cover: a year-month block plus an
// optional operational-week marker, e.g.
//
//	DC202501-rv2    → 2025, month 1, week 3 (rv is zero-based)
//	NW202503        → 2025, month 3, week 1
//	deck_2025-04_sem2 → 2025, month 4, week 2
//
// Operational weeks are the planning-cycle subdivision used in Brazilian
// power-sector scheduling; "rvN" revisions count from zero, "semN" weeks
// count from one.
// ============================================================================

// NameInfo is the period parsed out of a deck name. Week is 1-based.
type NameInfo struct {
	Year  int
	Month int
	Week  int
}

var (
	yearMonthRe = regexp.MustCompile(`(19|20)\d{2}[-_]?(0[1-9]|1[0-2])`)
	revisionRe  = regexp.MustCompile(`(?i)rv[-_]?(\d)`)
	weekRe      = regexp.MustCompile(`(?i)sem[-_]?(\d)`)
)

// ParseName extracts the period a deck name encodes. The boolean is
// false when no year-month block is found; a missing week marker
// defaults to week 1.
func ParseName(name string) (NameInfo, bool) {
	loc := yearMonthRe.FindString(name)
	if loc == "" {
		return NameInfo{}, false
	}
	digits := make([]rune, 0, 6)
	for _, r := range loc {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	year, _ := strconv.Atoi(string(digits[:4]))
	month, _ := strconv.Atoi(string(digits[4:6]))

	week := 1
	if m := revisionRe.FindStringSubmatch(name); m != nil {
		rv, _ := strconv.Atoi(m[1])
		week = rv + 1
	} else if m := weekRe.FindStringSubmatch(name); m != nil {
		week, _ = strconv.Atoi(m[1])
		if week < 1 {
			week = 1
		}
	}

	return NameInfo{Year: year, Month: month, Week: week}, true
}

// Before reports whether n is chronologically earlier than other.
func (n NameInfo) Before(other NameInfo) bool {
	if n.Year != other.Year {
		return n.Year < other.Year
	}
	if n.Month != other.Month {
		return n.Month < other.Month
	}
	return n.Week < other.Week
}
