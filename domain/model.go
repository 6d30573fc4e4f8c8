package domain

import "strings"

const (
	TextKeySuffix  = ".txt"
	AudioKeySuffix = ".mp3"
)

const (
	SuccessMessage = "Text converted to audio successfully"
	FailureMessage = "Failed to convert text to audio"
)

// ConversionResult is the payload returned to the hosting platform.
type ConversionResult struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"body"`
}

func SuccessResult() ConversionResult {
	return ConversionResult{
		StatusCode: 200,
		Message:    SuccessMessage,
	}
}

func FailureResult() ConversionResult {
	return ConversionResult{
		StatusCode: 500,
		Message:    FailureMessage,
	}
}

// ConversionReport describes one completed conversion.
type ConversionReport struct {
	TextKey    string `json:"text_key"`
	AudioKey   string `json:"audio_key"`
	AudioBytes int    `json:"audio_bytes"`
}

// DeriveAudioKey maps a source text key to its destination audio key by
// swapping the trailing extension. Keys without the text suffix are rejected
// so a stray upload can never silently map onto an unrelated destination key.
func DeriveAudioKey(textKey string) (string, error) {
	if !strings.HasSuffix(textKey, TextKeySuffix) {
		return "", NewInvalidKeyError(textKey)
	}

	return strings.TrimSuffix(textKey, TextKeySuffix) + AudioKeySuffix, nil
}
