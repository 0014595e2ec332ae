package service

import "time"

const (
	// DefaultTimeout bounds a single model call when no timeout is configured
	DefaultTimeout = 30 * time.Second

	// Temperature is kept low so answers stay close to the context text
	Temperature = 0.1

	DefaultModel = "gpt-3.5-turbo"
)

const (
	SimulationConfidence = 1.0
	LiveConfidence       = 0.98
	ErrorConfidence      = 0.0
)

const (
	SimulationText = "[SIMULATION MODE - NO API KEY] The EU Energy Efficiency Directive requires 3% renovation of public buildings annually."
	ErrorText      = "Error contacting Intelligence Service. Please check API Key configuration."
)
