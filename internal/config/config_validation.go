// SPDX-License-Identifier: MIT
// Copyright 2026 The Urbanflow Authors

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate checks the assembled [Config] against the agent's invariants and
// reports the first violation found, wrapped around the matching sentinel
// from errors.go. Construction stores values as given, so callers must call
// Validate explicitly and decide whether a violation is fatal.
//
// As a side effect, Validate creates the parent directory of the detector
// model path and the log file, and the debug output directory. Existing
// directories are not an error, so the call is idempotent.
func (cfg *Config) Validate() error {
	switch cfg.Camera.SourceType {
	case "file", "rtsp", "device":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCameraSource, cfg.Camera.SourceType)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Detector.ModelPath), 0o755); err != nil {
		return fmt.Errorf("error creating model directory: %w", err)
	}

	if cfg.Detector.ConfidenceThreshold < 0.0 || cfg.Detector.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDetectorConfidence, cfg.Detector.ConfidenceThreshold)
	}

	if cfg.Controller.ConfidenceThreshold < 0.0 || cfg.Controller.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("%w: got %v", ErrInvalidControllerConfidence, cfg.Controller.ConfidenceThreshold)
	}

	if cfg.Safety.MinGreen >= cfg.Safety.MaxGreen {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidGreenTimes, cfg.Safety.MinGreen, cfg.Safety.MaxGreen)
	}

	for _, path := range []string{cfg.Logging.FilePath, cfg.Debug.OutputPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("error creating output directory for %q: %w", path, err)
		}
	}

	return nil
}
