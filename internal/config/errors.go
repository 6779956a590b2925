package config

import "errors"

// Validation errors returned by [Config.Validate] when the assembled
// configuration violates an agent invariant.
var (
	// ErrInvalidCameraSource indicates a camera source type outside
	// {file, rtsp, device}.
	ErrInvalidCameraSource = errors.New("invalid camera source type")
	// ErrInvalidDetectorConfidence indicates a detector confidence
	// threshold outside [0.0, 1.0].
	ErrInvalidDetectorConfidence = errors.New("detector confidence threshold must be between 0.0 and 1.0")
	// ErrInvalidControllerConfidence indicates a controller confidence
	// threshold outside [0.0, 1.0].
	ErrInvalidControllerConfidence = errors.New("controller confidence threshold must be between 0.0 and 1.0")
	// ErrInvalidGreenTimes indicates that the minimum green time is not
	// strictly less than the maximum green time.
	ErrInvalidGreenTimes = errors.New("min green time must be less than max green time")
)
