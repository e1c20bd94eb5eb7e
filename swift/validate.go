package swift

import (
	"strings"

	"swift-workbench/models"
)

// EmptyMessageError is reported when there is nothing to validate.
const EmptyMessageError = "Please provide a SWIFT message to validate."

// EmptyParseError is reported when there is nothing to parse.
const EmptyParseError = "Please provide a SWIFT message to parse."

type requirement struct {
	tags []string
	desc string
}

var (
	mt940Rules = []requirement{
		{[]string{":20:"}, "Missing required field :20: (Transaction Reference)"},
		{[]string{":25:"}, "Missing required field :25: (Account Identification)"},
		{[]string{":60F:", ":60M:"}, "Missing required field :60F: or :60M: (Opening Balance)"},
		{[]string{":62F:", ":62M:"}, "Missing required field :62F: or :62M: (Closing Balance)"},
	}
	mt101Rules = []requirement{
		{[]string{":20:"}, "Missing required field :20: (Transaction Reference)"},
	}
	mt103Rules = []requirement{
		{[]string{":20:"}, "Missing required field :20: (Transaction Reference)"},
		{[]string{":23B:"}, "Missing required field :23B: (Bank Operation Code)"},
		{[]string{":32A:"}, "Missing required field :32A: (Value Date/Currency/Amount)"},
		{[]string{":50K:", ":50A:", ":50F:"}, "Missing required field :50K/A/F: (Ordering Customer)"},
		{[]string{":59:"}, "Missing required field :59: (Beneficiary Customer)"},
		{[]string{":71A:"}, "Missing required field :71A: (Details of Charges)"},
	}
)

var rulesByType = map[models.MessageType][]requirement{
	models.MT940: mt940Rules,
	models.MT942: mt940Rules,
	models.MT101: mt101Rules,
	models.MT103: mt103Rules,
}

// Validate checks msg for the required fields of its detected type.
// Messages of unknown type are only checked for being non-empty.
func Validate(msg string) models.ValidationResult {
	if strings.TrimSpace(msg) == "" {
		return models.ValidationResult{Errors: []string{EmptyMessageError}}
	}

	result := models.ValidationResult{
		Valid:       true,
		MessageType: DetectType(msg),
		FieldCount:  countFields(msg),
	}
	for _, rule := range rulesByType[result.MessageType] {
		if !containsAny(msg, rule.tags) {
			result.AddError(rule.desc)
		}
	}
	return result
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
