package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileConfig mirrors the subset of the JSON config file the loader
// consumes. Only the phase plan is file-sourced today; any group could be
// added here the same way. The plan is accepted both as a top-level
// "phases" key (the hand-written format) and nested under "intersection"
// (the format SaveToFile produces), so a saved config reloads as a phase
// override. Top level wins when both are present.
type fileConfig struct {
	Phases []Phase `json:"phases"`

	Intersection struct {
		Phases []Phase `json:"phases"`
	} `json:"intersection"`
}

func parseFile(path string) (*Config, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	phases := fileCfg.Phases
	if phases == nil {
		phases = fileCfg.Intersection.Phases
	}

	return &Config{
		Intersection: Intersection{Phases: phases},
	}, nil
}

// SaveToFile serializes the full configuration to path as JSON: one key per
// settings group, each group a flat field-to-value mapping, indented with
// two spaces.
func (cfg *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding configs: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing a json file: %w", err)
	}

	return nil
}
