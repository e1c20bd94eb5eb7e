package swift

import (
	"strings"

	"swift-workbench/models"
)

var typeLabels = map[models.MessageType]string{
	models.MT940: "MT940 (Customer Statement)",
	models.MT942: "MT942 (Interim Transaction Report)",
	models.MT101: "MT101 (Direct Debit)",
	models.MT103: "MT103 (Single Customer Credit Transfer)",
}

// SplitMessages cuts a pasted batch into messages. A message starts on a
// line beginning with "{1:" and ends on a line beginning with "}" or "-}".
// Lines outside a message are ignored and a trailing message without a
// closing line is kept.
func SplitMessages(input string) []models.SplitMessage {
	var (
		messages []models.SplitMessage
		current  strings.Builder
		inside   bool
	)
	flush := func() {
		messages = append(messages, newSplitMessage(current.String()))
		current.Reset()
		inside = false
	}

	for _, line := range lineBreak.Split(input, -1) {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "{1:") {
			if inside && current.Len() > 0 {
				flush()
			}
			current.WriteString(line + "\n")
			inside = true
			continue
		}
		if !inside {
			continue
		}
		current.WriteString(line + "\n")
		if strings.HasPrefix(line, "}") || strings.HasPrefix(line, "-}") {
			flush()
		}
	}
	if inside && current.Len() > 0 {
		flush()
	}
	return messages
}

func newSplitMessage(content string) models.SplitMessage {
	t := headerType(content)
	label, ok := typeLabels[t]
	if !ok {
		label = string(models.Unknown)
	}
	return models.SplitMessage{MessageType: t, Label: label, Content: content}
}

// headerType detects the type from an input or output application header
// marker such as "I940" or "O940".
func headerType(content string) models.MessageType {
	for _, t := range detectOrder {
		code := string(t)[2:]
		if strings.Contains(content, "I"+code) || strings.Contains(content, "O"+code) {
			return t
		}
	}
	return models.Unknown
}
