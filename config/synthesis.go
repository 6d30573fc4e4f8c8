package config

import "os"

const (
	defaultVoiceID      = "Joanna"
	defaultOutputFormat = "mp3"
)

type SynthesisConfig struct {
	VoiceID      string
	OutputFormat string
}

// GetSynthesisConfig returns the fixed voice and output format for this
// deployment. Both default to the values the production stack uses and can be
// overridden per environment.
func GetSynthesisConfig() (*SynthesisConfig, error) {
	voiceID := os.Getenv("VOICE_ID")
	if voiceID == "" {
		voiceID = defaultVoiceID
	}

	outputFormat := os.Getenv("OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = defaultOutputFormat
	}

	return &SynthesisConfig{
		VoiceID:      voiceID,
		OutputFormat: outputFormat,
	}, nil
}
