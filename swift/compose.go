package swift

import (
	"fmt"
	"regexp"
	"strings"

	"swift-workbench/models"
)

// ComposeRequest holds the composer form values.
type ComposeRequest struct {
	MessageType string
	Reference   string
	Account     string
	Balance     string
	Details     string
}

var nonAmount = regexp.MustCompile(`[^0-9,.]`)

// NormalizeType turns input like "mt940 - Customer Statement" into MT940.
func NormalizeType(s string) models.MessageType {
	fields := strings.Fields(strings.ToUpper(s))
	if len(fields) == 0 {
		return ""
	}
	return models.MessageType(fields[0])
}

// Compose builds a message with basic header, application header and user
// header blocks followed by the text block for the requested type.
func Compose(req ComposeRequest) (string, error) {
	msgType := NormalizeType(req.MessageType)
	if !models.IsComposable(msgType) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, req.MessageType)
	}
	ref := strings.TrimSpace(req.Reference)
	if ref == "" {
		return "", fmt.Errorf("%w: reference", ErrMissingField)
	}
	account := strings.TrimSpace(req.Account)
	if account == "" {
		return "", fmt.Errorf("%w: account", ErrMissingField)
	}
	balance := strings.TrimSpace(req.Balance)
	details := strings.TrimSpace(req.Details)

	var sb strings.Builder
	sb.WriteString("{1:F01BANKDEFFXXXX0000000000}")
	sb.WriteString("{2:I" + string(msgType)[2:] + "BANKDEFFXXXXN}")
	sb.WriteString("{3:{108:" + ref + "}}")
	sb.WriteString("{4:\n")

	switch msgType {
	case models.MT940:
		sb.WriteString(":20:" + ref + "\n")
		sb.WriteString(":25:" + account + "\n")
		sb.WriteString(":28C:0/1\n")
		sb.WriteString(":60F:" + balance + "\n")
		if details != "" {
			sb.WriteString(":61:" + details + "\n")
		}
		sb.WriteString(":62F:C" + balance + "\n")

	case models.MT101:
		sb.WriteString(":20:" + ref + "\n")
		sb.WriteString(":23:E\n")
		sb.WriteString(":32A:" + balance + "\n")
		if details != "" {
			sb.WriteString(":50K:" + details + "\n")
		}

	case models.MT103:
		sb.WriteString(":20:" + ref + "\n")
		sb.WriteString(":23B:CRED\n")
		sb.WriteString(":32A:" + balance + "\n")
		sb.WriteString(":50K:" + account + "\n")
		if details != "" {
			sb.WriteString(":59:" + details + "\n")
		}
		sb.WriteString(":71A:SHA\n")

	case models.MT104:
		// Details carry "date/reference"; only the date is used.
		date, _, _ := strings.Cut(details, "/")
		sb.WriteString(":20:" + ref + "\n")
		sb.WriteString(":30G:" + date + "\n")
		sb.WriteString(":21:" + ref + "-TR\n")
		sb.WriteString(":32B:" + balance + "\n")
		sb.WriteString(":50K:" + account + "\n")
		sb.WriteString(":19:" + nonAmount.ReplaceAllString(balance, "") + "\n")
		sb.WriteString(":30:" + date + "\n")
	}

	sb.WriteString("}")
	return sb.String(), nil
}
