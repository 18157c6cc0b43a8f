package ui

import "strings"

// Placeholder is the first dropdown option; choosing it selects nobody
const Placeholder = "Select username"

// SelectorState is the per-persona login selector state
type SelectorState int

const (
	StateUnselected SelectorState = iota
	StateSelected
	StateSubmittedValid
	StateSubmittedInvalid
)

func (s SelectorState) String() string {
	switch s {
	case StateUnselected:
		return "unselected"
	case StateSelected:
		return "selected"
	case StateSubmittedValid:
		return "submitted(valid)"
	case StateSubmittedInvalid:
		return "submitted(invalid)"
	default:
		return "unknown"
	}
}

// Select is the state after choosing a dropdown option
func Select(choice string) SelectorState {
	if isPlaceholder(choice) {
		return StateUnselected
	}
	return StateSelected
}

// Evaluate is the state after pressing Login with choice in the dropdown
func Evaluate(choice string) SelectorState {
	if isPlaceholder(choice) {
		return StateSubmittedInvalid
	}
	return StateSubmittedValid
}

func isPlaceholder(choice string) bool {
	choice = strings.TrimSpace(choice)
	return choice == "" || choice == Placeholder
}
