package companyparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatesFromContextLine(t *testing.T) {
	result := ParseCompanyDoc("Date d'émission: 15/03/2022\nTexte sans rapport 01/01/1999")

	assert.Equal(t, []string{"2022-03-15T00:00:00.000Z"}, result.IssueDates)
	assert.InDelta(t, 0.85, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestDatesGlobalFallbackWithoutContext(t *testing.T) {
	result := ParseCompanyDoc("Contrat signé le 05/06/2021 à Rabat")

	assert.Equal(t, []string{"2021-06-05T00:00:00.000Z"}, result.IssueDates)
	assert.InDelta(t, 0.7, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestDatesContextPresentButDateFromFallback(t *testing.T) {
	// The issuance line itself has no parsable date; the fallback scan
	// supplies one, but the context keyword still raises confidence.
	result := ParseCompanyDoc("Date d'émission: illisible\nCachet du 07/08/2020")

	assert.Equal(t, []string{"2020-08-07T00:00:00.000Z"}, result.IssueDates)
	assert.InDelta(t, 0.85, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestDatesFrenchMonthNames(t *testing.T) {
	result := ParseCompanyDoc("Date de création: 3 février 2021\nDate de publication: 15 août 2021")

	assert.Equal(t, []string{
		"2021-02-03T00:00:00.000Z",
		"2021-08-15T00:00:00.000Z",
	}, result.IssueDates)
}

func TestDatesAbbreviatedMonthWithPeriod(t *testing.T) {
	result := ParseCompanyDoc("Issued on 9 janv. 2023")

	assert.Equal(t, []string{"2023-01-09T00:00:00.000Z"}, result.IssueDates)
	assert.InDelta(t, 0.85, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestDatesInvalidCalendarDateDropped(t *testing.T) {
	result := ParseCompanyDoc("Date d'émission: 32/13/2023")

	assert.Empty(t, result.IssueDates)
	assert.InDelta(t, 0.1, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestDatesDeduplicatedByNormalizedValue(t *testing.T) {
	// Same date written two ways counts once.
	result := ParseCompanyDoc("Issued on 01/02/2023\nDate d'émission: 1 février 2023")

	assert.Equal(t, []string{"2023-02-01T00:00:00.000Z"}, result.IssueDates)
}

func TestDatesFallbackCapCountsUniqueDates(t *testing.T) {
	// A duplicate in the scan does not consume a slot of the 3-date
	// cap; the cap counts unique accepted dates.
	text := "01/02/2023 02/03/2023 01.02.2023 04/05/2023 06/07/2023"

	result := ParseCompanyDoc(text)

	assert.Equal(t, []string{
		"2023-02-01T00:00:00.000Z",
		"2023-03-02T00:00:00.000Z",
		"2023-05-04T00:00:00.000Z",
	}, result.IssueDates)
	assert.InDelta(t, 0.7, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestNormalizeDateIsoInput(t *testing.T) {
	p := New(Default())

	d, ok := p.normalizeDate("2020-12-31")
	assert.True(t, ok)
	assert.Equal(t, "2020-12-31T00:00:00.000Z", d)
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	p := New(Default())

	_, ok := p.normalizeDate("99/99/9999")
	assert.False(t, ok)
}
