package swift

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"swift-workbench/models"
)

// ErrNoCodes is returned when neither an IBAN nor a BIC was given.
var ErrNoCodes = errors.New("no IBAN or BIC given")

// NoCodesError is shown when the IBAN/BIC form is empty.
const NoCodesError = "Please enter an IBAN or BIC code to validate"

// Sample codes loaded into the IBAN/BIC form.
const (
	SampleIBAN = "DE89370400440532013000"
	SampleBIC  = "DEUTDEFFXXX"
)

var (
	ibanCountry = regexp.MustCompile(`^[A-Z]{2}$`)
	ibanBody    = regexp.MustCompile(`^[A-Z0-9]+$`)
	bicFormat   = regexp.MustCompile(`^[A-Z]{6}[A-Z]{2}[A-Z0-9]{2}[A-Z]{0,3}$`)
)

// ValidateIBAN checks the length, country code and character set of an
// IBAN. The check digits are not verified.
func ValidateIBAN(iban string) models.CodeResult {
	iban = strings.TrimSpace(iban)
	r := models.CodeResult{Kind: "IBAN", Code: iban}

	switch {
	case len(iban) < 2 || len(iban) > 34:
		r.Message = "Invalid length. IBAN must be between 2 and 34 characters."
	case !ibanCountry.MatchString(iban[:2]):
		r.Message = "Invalid country code. First two characters must be letters."
	case !ibanBody.MatchString(iban[2:]):
		r.Message = "Invalid format. IBAN must contain only letters and numbers."
	case iban == SampleIBAN:
		r.Valid = true
		r.Message = "Valid German IBAN. Bank: Deutsche Bank, Branch: Frankfurt."
	default:
		r.Valid = true
		r.Message = "Format appears valid. Check digits were not verified."
	}
	return r
}

// ValidateBIC checks the format of a BIC and splits it into its parts.
func ValidateBIC(bic string) models.CodeResult {
	bic = strings.TrimSpace(bic)
	r := models.CodeResult{Kind: "BIC", Code: bic}

	if len(bic) < 8 || len(bic) > 11 {
		r.Message = "Invalid length. BIC must be between 8 and 11 characters."
		return r
	}
	if !bicFormat.MatchString(bic) {
		r.Message = "Invalid format. Expected: 6 letters + 2 letters + 2 letters/digits + optional 3 letters."
		return r
	}

	parts := models.BICParts{
		Bank:     bic[:6],
		Country:  bic[6:8],
		Location: bic[8:10],
		Branch:   bic[10:],
	}
	r.Valid = true
	r.BIC = &parts
	r.Message = fmt.Sprintf("Valid BIC format. Bank Code: %s, Country: %s, Location: %s", parts.Bank, parts.Country, parts.Location)
	if parts.Branch != "" {
		r.Message += ", Branch: " + parts.Branch
	}
	return r
}

// ValidateCodes checks whichever of iban and bic is non-blank, IBAN first.
func ValidateCodes(iban, bic string) ([]models.CodeResult, error) {
	iban, bic = strings.TrimSpace(iban), strings.TrimSpace(bic)
	if iban == "" && bic == "" {
		return nil, ErrNoCodes
	}

	var results []models.CodeResult
	if iban != "" {
		results = append(results, ValidateIBAN(iban))
	}
	if bic != "" {
		results = append(results, ValidateBIC(bic))
	}
	return results, nil
}
