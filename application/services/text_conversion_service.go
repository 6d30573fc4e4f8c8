package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"vocalize-lambda/application/ports/inbound"
	"vocalize-lambda/application/ports/outbound"
	"vocalize-lambda/config"
	"vocalize-lambda/domain"
)

type textConversionService struct {
	logger          outbound.LoggerPort
	objectStore     outbound.ObjectStorePort
	synthesizer     outbound.SpeechSynthesizerPort
	audit           outbound.ConversionAuditPort
	bucketConfig    *config.BucketConfig
	synthesisConfig *config.SynthesisConfig
}

func NewTextConversionService(
	logger outbound.LoggerPort,
	objectStore outbound.ObjectStorePort,
	synthesizer outbound.SpeechSynthesizerPort,
	audit outbound.ConversionAuditPort,
	bucketConfig *config.BucketConfig,
	synthesisConfig *config.SynthesisConfig,
) inbound.TextConverterPort {
	return &textConversionService{
		logger:          logger,
		objectStore:     objectStore,
		synthesizer:     synthesizer,
		audit:           audit,
		bucketConfig:    bucketConfig,
		synthesisConfig: synthesisConfig,
	}
}

// Convert runs the read -> synthesize -> write sequence for one text object.
// Every failure is tagged with the stage it came from; the audio payload never
// touches local disk.
func (s *textConversionService) Convert(ctx context.Context, params inbound.ConvertTextParams) (*domain.ConversionReport, error) {
	start := time.Now()

	audioKey, err := domain.DeriveAudioKey(params.TextKey)
	if err != nil {
		s.logger.ErrorWithFields(err, "Refused to derive audio key", map[string]interface{}{
			"text_key": params.TextKey,
		})
		s.recordOutcome(ctx, params.TextKey, "", 0, err, start)
		return nil, err
	}

	payload, err := s.objectStore.Fetch(ctx, s.bucketConfig.SourceBucket, params.TextKey)
	if err != nil {
		wrapped := domain.NewSourceReadError(err)
		s.logger.ErrorWithFields(wrapped, "Failed to fetch text object", map[string]interface{}{
			"bucket":   s.bucketConfig.SourceBucket,
			"text_key": params.TextKey,
		})
		s.recordOutcome(ctx, params.TextKey, audioKey, 0, wrapped, start)
		return nil, wrapped
	}

	if !utf8.Valid(payload) {
		wrapped := domain.NewDecodeError(fmt.Errorf("object %q is not valid UTF-8", params.TextKey))
		s.logger.ErrorWithFields(wrapped, "Failed to decode text object", map[string]interface{}{
			"bucket":   s.bucketConfig.SourceBucket,
			"text_key": params.TextKey,
		})
		s.recordOutcome(ctx, params.TextKey, audioKey, 0, wrapped, start)
		return nil, wrapped
	}

	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechParams{
		Text:         string(payload),
		VoiceID:      s.synthesisConfig.VoiceID,
		OutputFormat: s.synthesisConfig.OutputFormat,
	})
	if err != nil {
		wrapped := domain.NewSynthesisError(err)
		s.logger.ErrorWithFields(wrapped, "Failed to synthesize speech", map[string]interface{}{
			"text_key": params.TextKey,
			"voice_id": s.synthesisConfig.VoiceID,
		})
		s.recordOutcome(ctx, params.TextKey, audioKey, 0, wrapped, start)
		return nil, wrapped
	}

	if len(audio) == 0 {
		wrapped := domain.NewSynthesisError(fmt.Errorf("synthesis returned an empty audio payload for %q", params.TextKey))
		s.logger.ErrorWithFields(wrapped, "Synthesis returned no audio", map[string]interface{}{
			"text_key": params.TextKey,
			"voice_id": s.synthesisConfig.VoiceID,
		})
		s.recordOutcome(ctx, params.TextKey, audioKey, 0, wrapped, start)
		return nil, wrapped
	}

	err = s.objectStore.Store(ctx, s.bucketConfig.DestinationBucket, audioKey, audio)
	if err != nil {
		wrapped := domain.NewDestinationWriteError(err)
		s.logger.ErrorWithFields(wrapped, "Failed to store audio object", map[string]interface{}{
			"bucket":    s.bucketConfig.DestinationBucket,
			"audio_key": audioKey,
		})
		s.recordOutcome(ctx, params.TextKey, audioKey, 0, wrapped, start)
		return nil, wrapped
	}

	s.logger.InfoWithFields("Converted text object to audio", map[string]interface{}{
		"text_key":    params.TextKey,
		"audio_key":   audioKey,
		"audio_bytes": len(audio),
	})
	s.recordOutcome(ctx, params.TextKey, audioKey, len(audio), nil, start)

	return &domain.ConversionReport{
		TextKey:    params.TextKey,
		AudioKey:   audioKey,
		AudioBytes: len(audio),
	}, nil
}

func (s *textConversionService) recordOutcome(ctx context.Context, textKey string, audioKey string, audioBytes int, conversionErr error, start time.Time) {
	outcome := "success"
	if conversionErr != nil {
		outcome = string(domain.KindOf(conversionErr))
	}

	err := s.audit.Record(ctx, outbound.ConversionRecord{
		TextKey:    textKey,
		AudioKey:   audioKey,
		AudioBytes: audioBytes,
		Outcome:    outcome,
		Duration:   time.Since(start),
	})
	if err != nil {
		s.logger.WarnWithFields("Failed to record conversion audit entry", map[string]interface{}{
			"text_key": textKey,
			"error":    err.Error(),
		})
	}
}
