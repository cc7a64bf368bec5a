package companyparser

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ykribii/ocr-company-verification/dto"
)

func TestParseCompanyDocFullDocument(t *testing.T) {
	text := "Raison sociale: TECHNOVISION SARL\n" +
		"Adresse: 12 Rue Zerktouni, Casablanca 20100, Maroc\n" +
		"ICE: 001234567000045\n" +
		"Date d'émission: 01/02/2023"

	result := ParseCompanyDoc(text)

	assert.Equal(t, "TECHNOVISION SARL", result.CompanyName)
	assert.InDelta(t, 0.95, result.Meta.Confidence.CompanyName, 1e-9)
	assert.Contains(t, result.Meta.Notes, "company_name:from_hint")

	if assert.NotNil(t, result.RegistrationNumber) {
		assert.Equal(t, dto.RegTypeICE, result.RegistrationNumber.Type)
		assert.Equal(t, "001234567000045", result.RegistrationNumber.Value)
	}
	assert.InDelta(t, 0.99, result.Meta.Confidence.RegistrationNumber, 1e-9)

	assert.Contains(t, result.Address, "Casablanca")
	assert.Contains(t, result.Address, "20100")
	assert.InDelta(t, 0.85, result.Meta.Confidence.Address, 1e-9)

	assert.Equal(t, []string{"2023-02-01T00:00:00.000Z"}, result.IssueDates)
	assert.InDelta(t, 0.85, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestParseRegistrationRCWithoutICE(t *testing.T) {
	result := ParseCompanyDoc("RC: B123456")

	if assert.NotNil(t, result.RegistrationNumber) {
		assert.Equal(t, dto.RegTypeRC, result.RegistrationNumber.Type)
		assert.Equal(t, "B123456", result.RegistrationNumber.Value)
	}
	assert.InDelta(t, 0.96, result.Meta.Confidence.RegistrationNumber, 1e-9)
}

func TestParseEmptyInput(t *testing.T) {
	result := ParseCompanyDoc("")

	assert.Empty(t, result.CompanyName)
	assert.Nil(t, result.RegistrationNumber)
	assert.Empty(t, result.Address)
	assert.NotNil(t, result.IssueDates)
	assert.Empty(t, result.IssueDates)
	assert.Empty(t, result.Meta.Notes)

	assert.InDelta(t, 0.1, result.Meta.Confidence.CompanyName, 1e-9)
	assert.InDelta(t, 0.1, result.Meta.Confidence.RegistrationNumber, 1e-9)
	assert.InDelta(t, 0.1, result.Meta.Confidence.Address, 1e-9)
	assert.InDelta(t, 0.1, result.Meta.Confidence.IssueDates, 1e-9)
}

func TestParseConfidencesAlwaysBounded(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n  ",
		"ICE: 001234567000045",
		"random noise ### ||| 12345",
		"Raison sociale: ACME\nAdresse: 1 Rue X, Rabat 10000\nDate d'émission: 01/02/2023",
	}

	for _, input := range inputs {
		result := ParseCompanyDoc(input)
		for _, score := range []float64{
			result.Meta.Confidence.CompanyName,
			result.Meta.Confidence.RegistrationNumber,
			result.Meta.Confidence.Address,
			result.Meta.Confidence.IssueDates,
		} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestRegistrationValueCharacterSet(t *testing.T) {
	valuePattern := regexp.MustCompile(`^[A-Za-z0-9/\-]+$`)

	inputs := []string{
		"ICE: 001234567000045",
		"Registre du commerce : 45/678-B",
		"Identifiant Fiscal: 40512345",
		"Patente: 25789012",
		"VAT Number: FR-123456",
		"Company No: 2021-0456",
	}

	for _, input := range inputs {
		result := ParseCompanyDoc(input)
		if assert.NotNil(t, result.RegistrationNumber, "input: %s", input) {
			assert.Regexp(t, valuePattern, result.RegistrationNumber.Value, "input: %s", input)
		}
	}
}

func TestIssueDatesAreValidISO(t *testing.T) {
	result := ParseCompanyDoc("Documents du 03/04/2021 et du 15 mars 2022 et du 2020-12-31")

	assert.NotEmpty(t, result.IssueDates)
	seen := map[string]bool{}
	for _, d := range result.IssueDates {
		_, err := time.Parse("2006-01-02T15:04:05.000Z", d)
		assert.NoError(t, err, "date: %s", d)
		assert.False(t, seen[d], "duplicate date: %s", d)
		seen[d] = true
	}
}

func TestExtractorsIndependent(t *testing.T) {
	// A document with only a registration number must not drag the
	// other fields' scores up or down.
	result := ParseCompanyDoc("ICE: 001234567000045")

	assert.InDelta(t, 0.99, result.Meta.Confidence.RegistrationNumber, 1e-9)
	assert.InDelta(t, 0.1, result.Meta.Confidence.CompanyName, 1e-9)
	assert.InDelta(t, 0.1, result.Meta.Confidence.Address, 1e-9)
	assert.InDelta(t, 0.1, result.Meta.Confidence.IssueDates, 1e-9)
}
