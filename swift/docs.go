package swift

import (
	"sort"

	"swift-workbench/models"
)

// TypeInfo describes a message type for the documentation view.
type TypeInfo struct {
	Type        models.MessageType
	Name        string
	Description string
	Features    string
}

// SupportedTypes lists the message types the workbench understands.
var SupportedTypes = []TypeInfo{
	{
		Type:        models.MT940,
		Name:        "Customer Statement Message",
		Description: "End-of-day bank account statements showing all booked transactions.",
		Features:    "Opening/Closing balances, transaction lines, account identification",
	},
	{
		Type:        models.MT942,
		Name:        "Interim Transaction Report",
		Description: "Interim transaction reporting during the day for real-time monitoring.",
		Features:    "Floor limits, transaction summaries, datetime indicators",
	},
	{
		Type:        models.MT101,
		Name:        "Request for Transfer",
		Description: "Payment instructions and direct debit requests for automated processing.",
		Features:    "Sender reference, beneficiary details, remittance information",
	},
	{
		Type:        models.MT103,
		Name:        "Single Customer Credit Transfer",
		Description: "A single payment from an ordering customer to a beneficiary.",
		Features:    "Bank operation code, value date and amount, charges",
	},
	{
		Type:        models.MT104,
		Name:        "Direct Debit and Request for Debit Transfer",
		Description: "Batches of direct debits collected on a requested execution date.",
		Features:    "Requested execution date, transaction reference, sum of amounts",
	},
}

// KnownFields returns the named field tags in tag order.
func KnownFields() []models.ParsedField {
	fields := make([]models.ParsedField, 0, len(fieldNames))
	for tag, name := range fieldNames {
		fields = append(fields, models.ParsedField{Tag: tag, Name: name})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Tag < fields[j].Tag })
	return fields
}
