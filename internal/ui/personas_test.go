package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPersonas(t *testing.T) {
	personas, err := LoadPersonas()
	require.NoError(t, err)
	require.Len(t, personas, 3)

	keys := []string{personas[0].Key, personas[1].Key, personas[2].Key}
	assert.Equal(t, []string{"grace", "james", "faye"}, keys)

	grace, ok := personas.ByKey("grace")
	require.True(t, ok)
	assert.Equal(t, "student", grace.Role)
	assert.Equal(t, "Grace", grace.FirstName)
	assert.Equal(t, "/student", grace.Home)
	assert.Equal(t, "Please select a student username.", grace.Warning)

	faye, ok := personas.ByRole("activist")
	require.True(t, ok)
	assert.Equal(t, "faye", faye.Key)

	_, ok = personas.ByKey("nobody")
	assert.False(t, ok)
}

func TestParsePersonas_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "personas: [\n"},
		{"missing role", "personas:\n  - key: x\n    home: /x\n"},
		{"duplicate key", "personas:\n  - {key: x, role: a, home: /a}\n  - {key: x, role: b, home: /b}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePersonas([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSelectorStates(t *testing.T) {
	tests := []struct {
		choice     string
		wantSelect SelectorState
		wantSubmit SelectorState
	}{
		{"", StateUnselected, StateSubmittedInvalid},
		{Placeholder, StateUnselected, StateSubmittedInvalid},
		{"  ", StateUnselected, StateSubmittedInvalid},
		{"grace_h", StateSelected, StateSubmittedValid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantSelect, Select(tt.choice), "Select(%q)", tt.choice)
		assert.Equal(t, tt.wantSubmit, Evaluate(tt.choice), "Evaluate(%q)", tt.choice)
	}
	assert.Equal(t, "submitted(invalid)", StateSubmittedInvalid.String())
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("home.html"))
	assert.NotNil(t, tmpl.Lookup("role.html"))
}
