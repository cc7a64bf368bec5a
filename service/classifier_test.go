package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ykribii/ocr-company-verification/dto"
)

func TestClassifyCompanyDocument(t *testing.T) {
	text := `
		Raison sociale: TECHNOVISION SARL
		ICE: 001234567000045
		Siège social: 12 Rue Zerktouni, Casablanca
		Date d'émission: 01/02/2023
	`

	assert.Equal(t, dto.DocTypeCompanyDoc, ClassifyDocType(text))
}

func TestClassifyCV(t *testing.T) {
	text := `
		Jane Smith
		jane.smith@example.com
		linkedin.com/in/janesmith
		Skills: Go, Python, SQL
		Work Experience
		Education
		Languages: English, French
	`

	assert.Equal(t, dto.DocTypeCV, ClassifyDocType(text))
}

func TestClassifyCVInFrench(t *testing.T) {
	text := `
		Compétences: développement web
		Formation: Master Informatique
		Expériences professionnelles
		Langues: français, anglais
		contact: jane@exemple.ma
	`

	assert.Equal(t, dto.DocTypeCV, ClassifyDocType(text))
}

func TestClassifyDefaultsToCompanyDoc(t *testing.T) {
	// With no signal either way the pipeline proceeds with the company
	// parser, which degrades gracefully on non-company text.
	assert.Equal(t, dto.DocTypeCompanyDoc, ClassifyDocType("texte neutre"))
}
