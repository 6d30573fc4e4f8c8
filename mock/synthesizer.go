package mock_collaborators

import (
	"context"
	"sync"

	"vocalize-lambda/application/ports/outbound"
)

// ScriptedSynthesizer returns a fixed payload, or a scripted failure, and
// remembers every request it saw.
type ScriptedSynthesizer struct {
	mu       sync.Mutex
	Payload  []byte
	Err      error
	FailKeys map[string]error
	Requests []outbound.SynthesizeSpeechParams
}

func NewScriptedSynthesizer(payload []byte) *ScriptedSynthesizer {
	return &ScriptedSynthesizer{
		Payload: payload,
	}
}

func (s *ScriptedSynthesizer) Synthesize(_ context.Context, params outbound.SynthesizeSpeechParams) ([]byte, error) {
	s.mu.Lock()
	s.Requests = append(s.Requests, params)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err, ok := s.FailKeys[params.Text]; ok {
		return nil, err
	}

	return s.Payload, nil
}

func (s *ScriptedSynthesizer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.Requests)
}

var _ outbound.SpeechSynthesizerPort = (*ScriptedSynthesizer)(nil)
