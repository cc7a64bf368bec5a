package companyparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyNameFromHintSameLine(t *testing.T) {
	result := ParseCompanyDoc("Dénomination sociale: Atlas Céréales S.A.\nAutre ligne")

	assert.Equal(t, "Atlas Céréales S.A.", result.CompanyName)
	assert.InDelta(t, 0.95, result.Meta.Confidence.CompanyName, 1e-9)
	assert.Contains(t, result.Meta.Notes, "company_name:from_hint")
}

func TestCompanyNameFromHintNextLine(t *testing.T) {
	// Structured documents put the value under the label.
	result := ParseCompanyDoc("Raison sociale:\nTECHNOVISION SARL\nAdresse: 1 Rue X")

	assert.Equal(t, "TECHNOVISION SARL", result.CompanyName)
	assert.InDelta(t, 0.93, result.Meta.Confidence.CompanyName, 1e-9)
	assert.Contains(t, result.Meta.Notes, "company_name:from_hint_next_line")
}

func TestCompanyNameHintStripsDashAndNoise(t *testing.T) {
	result := ParseCompanyDoc("Company name : - Maghreb Steel & Co. ###")

	assert.Equal(t, "Maghreb Steel & Co.", result.CompanyName)
	assert.InDelta(t, 0.95, result.Meta.Confidence.CompanyName, 1e-9)
}

func TestCompanyNameHintCutsTrailingIdentifier(t *testing.T) {
	result := ParseCompanyDoc("Raison sociale: ATLANTIC TRADING RC 45678")

	assert.Equal(t, "ATLANTIC TRADING", result.CompanyName)
}

func TestCompanyNameTitleLikeUppercaseWins(t *testing.T) {
	// Two plausible title lines of equal length: the fully uppercase
	// one wins on the uppercase-ratio bonus.
	result := ParseCompanyDoc("Acme Holdings\nACME HOLDINGS\nsome other content here")

	assert.Equal(t, "ACME HOLDINGS", result.CompanyName)
	assert.InDelta(t, 0.75, result.Meta.Confidence.CompanyName, 1e-9)
	assert.Contains(t, result.Meta.Notes, "company_name:title_like")
}

func TestCompanyNameTitleLikeAccentedUppercase(t *testing.T) {
	// Accented capitals count toward the uppercase ratio.
	result := ParseCompanyDoc("Société Générale Maroc\nSOCIÉTÉ GÉNÉRALE MAROC")

	assert.Equal(t, "SOCIÉTÉ GÉNÉRALE MAROC", result.CompanyName)
}

func TestCompanyNameTitleLikeSkipsLinesWithDigits(t *testing.T) {
	result := ParseCompanyDoc("Certificat 2023\nMAGHREB DISTRIBUTION\nligne ordinaire")

	assert.Equal(t, "MAGHREB DISTRIBUTION", result.CompanyName)
}

func TestCompanyNameAbsent(t *testing.T) {
	result := ParseCompanyDoc("12345\n67890")

	assert.Empty(t, result.CompanyName)
	assert.InDelta(t, 0.1, result.Meta.Confidence.CompanyName, 1e-9)
}
