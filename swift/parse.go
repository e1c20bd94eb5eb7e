package swift

import (
	"regexp"
	"strings"

	"swift-workbench/models"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

var fieldNames = map[string]string{
	":20:":  "Transaction Reference",
	":25:":  "Account Identification",
	":28C:": "Statement Number",
	":60F:": "Opening Balance",
	":61F:": "Transaction",
	":62F:": "Closing Balance",
	":64:":  "Closing Available Balance",
	":86:":  "Information to Account Owner",
	":23B:": "Bank Operation Code",
	":32A:": "Value Date/Currency/Amount",
	":33B:": "Instructed Amount",
	":50K:": "Ordering Customer",
	":59:":  "Beneficiary Customer",
	":71A:": "Details of Charges",
	":70:":  "Remittance Information",
}

// FieldName returns the display name for a ":TAG:" string.
func FieldName(tag string) string {
	if name, ok := fieldNames[tag]; ok {
		return name
	}
	return "Field " + tag
}

// Parse extracts every ":TAG:value" line from msg.
func Parse(msg string) (models.ParseResult, error) {
	if strings.TrimSpace(msg) == "" {
		return models.ParseResult{}, ErrEmptyMessage
	}

	fields := []models.ParsedField{}
	for _, line := range lineBreak.Split(msg, -1) {
		if field, ok := parseField(line); ok {
			fields = append(fields, field)
		}
	}

	return models.ParseResult{
		MessageType: DetectType(msg),
		Status:      "Valid",
		FieldCount:  len(fields),
		Messages:    SplitMessages(msg),
		Fields:      fields,
	}, nil
}

func parseField(line string) (models.ParsedField, bool) {
	if !strings.HasPrefix(line, ":") {
		return models.ParsedField{}, false
	}
	end := strings.IndexByte(line[1:], ':')
	if end < 0 {
		return models.ParsedField{}, false
	}
	tag := line[:end+2]
	return models.ParsedField{
		Tag:   tag,
		Name:  FieldName(tag),
		Value: line[end+2:],
	}, true
}
