package adapters

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"

	"vocalize-lambda/application/ports/outbound"
)

type pollySynthesizer struct {
	pollySvc *polly.Polly
	logger   outbound.LoggerPort
}

func NewPollySynthesizer(pollySvc *polly.Polly, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &pollySynthesizer{
		pollySvc: pollySvc,
		logger:   logger,
	}
}

// Synthesize sends the whole text in one request. Polly enforces its own
// length limit; a rejection comes back as a plain error for the caller to tag.
func (p *pollySynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeSpeechParams) ([]byte, error) {
	input := &polly.SynthesizeSpeechInput{
		Text:         aws.String(params.Text),
		VoiceId:      aws.String(params.VoiceID),
		OutputFormat: aws.String(params.OutputFormat),
	}

	out, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		p.logger.ErrorWithFields(err, "Polly synthesis request failed", map[string]interface{}{
			"voice_id":      params.VoiceID,
			"output_format": params.OutputFormat,
			"text_length":   len(params.Text),
		})
		return nil, err
	}

	if out.AudioStream == nil {
		return nil, fmt.Errorf("polly response contained no audio stream")
	}

	defer func(stream io.ReadCloser) {
		closeErr := stream.Close()
		if closeErr != nil {
			p.logger.Error(closeErr, "Failed to close Polly audio stream")
		}
	}(out.AudioStream)

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		p.logger.Error(err, "Failed to read Polly audio stream")
		return nil, err
	}

	return audio, nil
}
