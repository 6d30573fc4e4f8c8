package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocalize-lambda/application/ports/inbound"
	"vocalize-lambda/config"
	"vocalize-lambda/domain"
	"vocalize-lambda/infrastructure/adapters"
	mock "vocalize-lambda/mock"
)

const (
	testSourceBucket      = "source-bucket"
	testDestinationBucket = "destination-bucket"
)

func newTestConverterBuckets() *config.BucketConfig {
	return &config.BucketConfig{
		SourceBucket:      testSourceBucket,
		DestinationBucket: testDestinationBucket,
	}
}

func newTestConverter(store *mock.InMemoryObjectStore, synthesizer *mock.ScriptedSynthesizer, audit *mock.RecordingConversionAudit) inbound.TextConverterPort {
	return NewTextConversionService(
		adapters.NewZerologWrapper(),
		store,
		synthesizer,
		audit,
		newTestConverterBuckets(),
		&config.SynthesisConfig{
			VoiceID:      "Joanna",
			OutputFormat: "mp3",
		},
	)
}

func TestConvert_Success(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "hello.txt", []byte("Hello world"))
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))
	audit := mock.NewRecordingConversionAudit()

	converter := newTestConverter(store, synthesizer, audit)

	report, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.NoError(t, err)

	assert.Equal(t, "hello.txt", report.TextKey)
	assert.Equal(t, "hello.mp3", report.AudioKey)
	assert.Equal(t, len("mp3-bytes"), report.AudioBytes)

	body, ok := store.Object(testDestinationBucket, "hello.mp3")
	require.True(t, ok)
	assert.Equal(t, []byte("mp3-bytes"), body)
	assert.Equal(t, 1, store.ObjectCount(testDestinationBucket))

	require.Equal(t, 1, synthesizer.RequestCount())
	assert.Equal(t, "Hello world", synthesizer.Requests[0].Text)
	assert.Equal(t, "Joanna", synthesizer.Requests[0].VoiceID)
	assert.Equal(t, "mp3", synthesizer.Requests[0].OutputFormat)

	record, ok := audit.LastRecord()
	require.True(t, ok)
	assert.Equal(t, "success", record.Outcome)
	assert.Equal(t, "hello.mp3", record.AudioKey)
}

func TestConvert_MissingSourceObject(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))
	audit := mock.NewRecordingConversionAudit()

	converter := newTestConverter(store, synthesizer, audit)

	_, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "missing.txt"})
	require.Error(t, err)

	assert.Equal(t, domain.ErrorKindSourceRead, domain.KindOf(err))
	assert.Equal(t, 0, store.ObjectCount(testDestinationBucket))
	assert.Equal(t, 0, synthesizer.RequestCount())
}

func TestConvert_InvalidKeySuffix(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "notes.md", []byte("markdown"))
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))

	converter := newTestConverter(store, synthesizer, mock.NewRecordingConversionAudit())

	_, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "notes.md"})
	require.Error(t, err)

	assert.Equal(t, domain.ErrorKindInvalidKey, domain.KindOf(err))
	assert.Equal(t, 0, store.ObjectCount(testDestinationBucket))
}

func TestConvert_InvalidUTF8(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "binary.txt", []byte{0xff, 0xfe, 0x00})
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))

	converter := newTestConverter(store, synthesizer, mock.NewRecordingConversionAudit())

	_, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "binary.txt"})
	require.Error(t, err)

	assert.Equal(t, domain.ErrorKindDecode, domain.KindOf(err))
	assert.Equal(t, 0, synthesizer.RequestCount())
}

func TestConvert_SynthesisFailure(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "hello.txt", []byte("Hello world"))
	synthesizer := mock.NewScriptedSynthesizer(nil)
	synthesizer.Err = errors.New("text too long")

	converter := newTestConverter(store, synthesizer, mock.NewRecordingConversionAudit())

	_, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.Error(t, err)

	assert.Equal(t, domain.ErrorKindSynthesis, domain.KindOf(err))
	assert.Equal(t, 0, store.ObjectCount(testDestinationBucket))
}

func TestConvert_EmptySynthesisPayload(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "hello.txt", []byte("Hello world"))
	synthesizer := mock.NewScriptedSynthesizer(nil)
	audit := mock.NewRecordingConversionAudit()

	converter := newTestConverter(store, synthesizer, audit)

	_, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.Error(t, err)

	// An empty payload is an explicit synthesis failure, not a silent success.
	assert.Equal(t, domain.ErrorKindSynthesis, domain.KindOf(err))
	assert.Equal(t, 0, store.ObjectCount(testDestinationBucket))

	record, ok := audit.LastRecord()
	require.True(t, ok)
	assert.Equal(t, string(domain.ErrorKindSynthesis), record.Outcome)
}

func TestConvert_DestinationWriteFailure(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "hello.txt", []byte("Hello world"))
	store.StoreErr = errors.New("access denied")
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))

	converter := newTestConverter(store, synthesizer, mock.NewRecordingConversionAudit())

	_, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.Error(t, err)

	assert.Equal(t, domain.ErrorKindDestinationWrite, domain.KindOf(err))
}

func TestConvert_Idempotent(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "hello.txt", []byte("Hello world"))
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))

	converter := newTestConverter(store, synthesizer, mock.NewRecordingConversionAudit())

	first, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.NoError(t, err)
	second, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.NoError(t, err)

	assert.Equal(t, first.AudioKey, second.AudioKey)
	assert.Equal(t, 1, store.ObjectCount(testDestinationBucket))
}

func TestConvert_AuditFailureDoesNotFailConversion(t *testing.T) {
	store := mock.NewInMemoryObjectStore()
	store.Seed(testSourceBucket, "hello.txt", []byte("Hello world"))
	synthesizer := mock.NewScriptedSynthesizer([]byte("mp3-bytes"))
	audit := mock.NewRecordingConversionAudit()
	audit.Err = errors.New("table throttled")

	converter := newTestConverter(store, synthesizer, audit)

	report, err := converter.Convert(context.Background(), inbound.ConvertTextParams{TextKey: "hello.txt"})
	require.NoError(t, err)
	assert.Equal(t, "hello.mp3", report.AudioKey)
}
