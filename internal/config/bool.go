// SPDX-License-Identifier: MIT
// Copyright 2026 The Urbanflow Authors

package config

import (
	"encoding/json"
	"strings"
)

// Bool is a boolean with the deployment scripts' parsing rule: the string
// "true" (case-insensitive) is true and every other value, malformed input
// included, is false. Parsing never fails; unknown values fail closed.
type Bool bool

// UnmarshalText implements encoding.TextUnmarshaler. It is used both for
// environment variable values and for envDefault tag values.
func (b *Bool) UnmarshalText(text []byte) error {
	*b = Bool(strings.EqualFold(string(text), "true"))
	return nil
}

// UnmarshalJSON accepts a JSON boolean or a string carrying the same
// fail-closed rule as UnmarshalText.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		*b = Bool(value)
	case string:
		*b = Bool(strings.EqualFold(value, "true"))
	default:
		*b = false
	}

	return nil
}

// MarshalJSON renders the value as a plain JSON boolean.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
