package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange_YearRange(t *testing.T) {
	dr := ParseDateRange("Acme Corp 2019-2022", 2026)
	assert.True(t, dr.Parsed)
	assert.Equal(t, 2019, dr.StartYear)
	assert.Equal(t, 2022, dr.EndYear)
	assert.False(t, dr.Present)
	assert.Equal(t, 3, dr.Years())
}

func TestParseDateRange_YearToPresent(t *testing.T) {
	dr := ParseDateRange("2020 - Present", 2026)
	assert.True(t, dr.Parsed)
	assert.True(t, dr.Present)
	assert.Equal(t, 2020, dr.StartYear)
	assert.Equal(t, 2026, dr.EndYear)
}

func TestParseDateRange_MonthYearPair(t *testing.T) {
	dr := ParseDateRange("Jan 2018 - Mar 2021", 2026)
	assert.True(t, dr.Parsed)
	assert.Equal(t, 2018, dr.StartYear)
	assert.Equal(t, 2021, dr.EndYear)
}

func TestParseDateRange_MonthYearToPresent(t *testing.T) {
	dr := ParseDateRange("September 2022 to Present", 2026)
	assert.True(t, dr.Parsed)
	assert.True(t, dr.Present)
	assert.Equal(t, 2022, dr.StartYear)
	assert.Equal(t, 2026, dr.EndYear)
}

func TestParseDateRange_Unparseable(t *testing.T) {
	for _, text := range []string{"", "Engineer at Acme", "since a while ago", "2019"} {
		dr := ParseDateRange(text, 2026)
		assert.False(t, dr.Parsed, text)
		assert.Equal(t, 0, dr.Years(), text)
	}
}

func TestDateRangeYears_InvertedRangeIsZero(t *testing.T) {
	dr := ParseDateRange("2022-2019", 2026)
	assert.Equal(t, 0, dr.Years())
}

func TestContainsDateRange(t *testing.T) {
	assert.True(t, containsDateRange("Acme Corp 2019-2022"))
	assert.True(t, containsDateRange("Jan 2020 - Present"))
	assert.True(t, containsDateRange("Feb 2018 to Jun 2019"))
	assert.False(t, containsDateRange("Led migrations in 2020"))
	assert.False(t, containsDateRange("Senior Engineer"))
}

func TestStripDateRange(t *testing.T) {
	assert.Equal(t, "Senior Engineer at Acme Corp", stripDateRange("Senior Engineer at Acme Corp 2019 - 2023"))
	assert.Equal(t, "Acme Corp", stripDateRange("Acme Corp (Jan 2020 - Present)"))
}
