package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

var (
	// "Jan 2020", "September 2021"
	monthYearRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})\b`)
	// "2019-2022", "2020 – Present"
	yearRangeRe = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:[-–—]|to)\s*(\d{4}|present|current|now)\b`)
	presentRe   = regexp.MustCompile(`(?i)\b(present|current|now)\b`)
	bareYearRe  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// containsDateRange reports whether a line carries something the date
// parser could treat as an employment range. Used to split experience
// blocks.
func containsDateRange(line string) bool {
	if yearRangeRe.MatchString(line) {
		return true
	}
	years := monthYearRe.FindAllString(line, -1)
	if len(years) >= 2 {
		return true
	}
	return len(years) == 1 && presentRe.MatchString(line)
}

// ParseDateRange parses an employment date range out of free text.
// Supported shapes: "MMM YYYY - MMM YYYY", "MMM YYYY - Present",
// "YYYY-YYYY", "YYYY - Present". Anything else yields Parsed == false with
// the raw text preserved.
func ParseDateRange(text string, currentYear int) types.DateRange {
	dr := types.DateRange{Raw: strings.TrimSpace(text)}

	if my := monthYearRe.FindAllStringSubmatch(text, -1); len(my) >= 1 {
		start, _ := strconv.Atoi(my[0][2])
		if len(my) >= 2 {
			end, _ := strconv.Atoi(my[1][2])
			dr.StartYear, dr.EndYear, dr.Parsed = start, end, true
			return dr
		}
		if presentRe.MatchString(text) {
			dr.StartYear, dr.EndYear, dr.Present, dr.Parsed = start, currentYear, true, true
			return dr
		}
	}

	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		start, _ := strconv.Atoi(m[1])
		if end, err := strconv.Atoi(m[2]); err == nil {
			dr.StartYear, dr.EndYear, dr.Parsed = start, end, true
		} else {
			dr.StartYear, dr.EndYear, dr.Present, dr.Parsed = start, currentYear, true, true
		}
		return dr
	}

	return dr
}

// stripDateRange removes the matched date text from a header line so the
// remainder can be split into company and title.
func stripDateRange(line string) string {
	if monthYearRe.MatchString(line) {
		line = monthYearRe.ReplaceAllString(line, "")
		line = presentRe.ReplaceAllString(line, "")
	}
	line = yearRangeRe.ReplaceAllString(line, "")
	line = strings.Trim(line, " \t-–—|,(:)")
	return strings.TrimSpace(line)
}

// looksLikeYearOnly reports whether text is dominated by a bare year, used
// when deciding if a trailing line is a date fragment rather than a bullet.
func looksLikeYearOnly(line string) bool {
	trimmed := strings.TrimSpace(line)
	return bareYearRe.MatchString(trimmed) && len(trimmed) <= 12
}
