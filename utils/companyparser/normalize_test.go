package companyparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesOCRArtifacts(t *testing.T) {
	input := "REGISTRE DU   COMMERCE | Casablanca\t20100  "

	assert.Equal(t, "REGISTRE DU COMMERCE Casablanca 20100", Normalize(input))
}

func TestNormalizePreservesNewlines(t *testing.T) {
	input := "ligne   une\nligne  deux"

	assert.Equal(t, "ligne une\nligne deux", Normalize(input))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"déjà normalisé",
		"Raison sociale :   X | Y",
		"a\nb\nc",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestDeburr(t *testing.T) {
	assert.Equal(t, "emission", Deburr("émission"))
	assert.Equal(t, "Siege social a Fes", Deburr("Siège social à Fès"))
	assert.Equal(t, "deja", Deburr("déjà"))
	assert.Equal(t, "plain text", Deburr("plain text"))
}
