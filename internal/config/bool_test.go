package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool_UnmarshalText_NeverErrors(t *testing.T) {
	tests := []struct {
		in       string
		expected Bool
	}{
		{"true", true},
		{"TRUE", true},
		{"tRuE", true},
		{"false", false},
		{"0", false},
		{"1", false},
		{"yes", false},
		{"maybe", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var b Bool
			require.NoError(t, b.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Bool
	}{
		{"json true", `true`, true},
		{"json false", `false`, false},
		{"string true", `"true"`, true},
		{"string TRUE", `"TRUE"`, true},
		{"string yes", `"yes"`, false},
		{"number", `1`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bool
			require.NoError(t, json.Unmarshal([]byte(tt.in), &b))
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestBool_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		On  Bool `json:"on"`
		Off Bool `json:"off"`
	}{On: true, Off: false})

	require.NoError(t, err)
	assert.JSONEq(t, `{"on": true, "off": false}`, string(data))
}
