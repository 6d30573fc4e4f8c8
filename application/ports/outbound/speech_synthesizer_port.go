package outbound

import "context"

type SynthesizeSpeechParams struct {
	Text         string
	VoiceID      string
	OutputFormat string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeSpeechParams) ([]byte, error)
}
