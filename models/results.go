package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MessageType identifies a SWIFT MT message.
type MessageType string

const (
	MT940   MessageType = "MT940"
	MT942   MessageType = "MT942"
	MT101   MessageType = "MT101"
	MT103   MessageType = "MT103"
	MT104   MessageType = "MT104"
	Unknown MessageType = "Unknown"
)

// ComposableTypes lists the message types the composer can build.
var ComposableTypes = []MessageType{MT940, MT101, MT103, MT104}

// IsComposable reports whether t can be composed.
func IsComposable(t MessageType) bool {
	for _, c := range ComposableTypes {
		if c == t {
			return true
		}
	}
	return false
}

// ValidationResult is the outcome of checking a message for required fields.
type ValidationResult struct {
	Valid       bool        `json:"valid" yaml:"valid"`
	MessageType MessageType `json:"message_type" yaml:"message_type"`
	FieldCount  int         `json:"field_count" yaml:"field_count"`
	Errors      []string    `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (r *ValidationResult) AddError(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// Report renders the result as plain text for the output pane.
func (r ValidationResult) Report() string {
	var sb strings.Builder

	status := "VALID"
	if !r.Valid {
		status = "INVALID"
	}
	sb.WriteString("Status: " + status + "\n")
	if r.MessageType != "" {
		sb.WriteString("Message Type: " + string(r.MessageType) + "\n")
		sb.WriteString("Field Count: " + strconv.Itoa(r.FieldCount) + "\n")
	}
	if len(r.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - " + e + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ParsedField is one ":TAG:value" line of a message text block.
type ParsedField struct {
	Tag   string `json:"tag" yaml:"tag"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// SplitMessage is one message found in a pasted batch.
type SplitMessage struct {
	MessageType MessageType `json:"message_type" yaml:"message_type"`
	Label       string      `json:"label" yaml:"label"`
	Content     string      `json:"content" yaml:"content"`
}

// ParseResult holds the fields extracted from a message.
type ParseResult struct {
	MessageType MessageType    `json:"message_type" yaml:"message_type"`
	Status      string         `json:"status" yaml:"status"`
	FieldCount  int            `json:"field_count" yaml:"field_count"`
	Messages    []SplitMessage `json:"messages,omitempty" yaml:"messages,omitempty"`
	Fields      []ParsedField  `json:"fields" yaml:"fields"`
}

// Report renders the result as plain text for the output pane.
func (r ParseResult) Report() string {
	var sb strings.Builder

	sb.WriteString("Message Type: " + string(r.MessageType) + "\n")
	sb.WriteString("Status: " + r.Status + "\n")
	sb.WriteString("Fields: " + strconv.Itoa(r.FieldCount) + "\n")
	if len(r.Messages) > 0 {
		sb.WriteString("Messages: " + strconv.Itoa(len(r.Messages)) + "\n")
		for i, m := range r.Messages {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, m.Label))
		}
	}

	width := 0
	for _, f := range r.Fields {
		if len(f.Tag) > width {
			width = len(f.Tag)
		}
	}
	if len(r.Fields) > 0 {
		sb.WriteString("\n")
	}
	for _, f := range r.Fields {
		sb.WriteString(fmt.Sprintf("%-*s  %s: %s\n", width, f.Tag, f.Name, f.Value))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// BICParts are the components of a BIC.
type BICParts struct {
	Bank     string `json:"bank" yaml:"bank"`
	Country  string `json:"country" yaml:"country"`
	Location string `json:"location" yaml:"location"`
	Branch   string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// CodeResult is the outcome of checking one IBAN or BIC.
type CodeResult struct {
	Kind    string    `json:"kind" yaml:"kind"`
	Code    string    `json:"code" yaml:"code"`
	Valid   bool      `json:"valid" yaml:"valid"`
	Message string    `json:"message" yaml:"message"`
	BIC     *BICParts `json:"bic,omitempty" yaml:"bic,omitempty"`
}

// CodeReport renders code results as plain text for the output pane.
func CodeReport(results []CodeResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		status := "VALID"
		if !r.Valid {
			status = "INVALID"
		}
		blocks = append(blocks, r.Kind+": "+r.Code+"\n"+
			"Status: "+status+"\n"+
			r.Message)
	}
	return strings.Join(blocks, "\n\n")
}
