package assistant

import (
	"context"
	"strings"
	"time"

	"packport/internal/assistant/metrics"
)

// Reply is a resolved assistant answer. Scripted distinguishes a script hit
// from the fallback.
type Reply struct {
	Text     string
	Scripted bool
}

// Service resolves questions against the script and delivers replies after
// a configured typing delay.
type Service struct {
	script   map[string]string
	fallback string
	delay    time.Duration
	metrics  *metrics.Metrics
}

// NewService builds an assistant. A nil script gets the default one; an
// empty fallback gets the default fallback.
func NewService(script map[string]string, fallback string, delay time.Duration, m *metrics.Metrics) *Service {
	if script == nil {
		script = DefaultScript()
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Service{script: script, fallback: fallback, delay: delay, metrics: m}
}

// Resolve looks up the reply for a question without waiting. Questions are
// matched on their trimmed text.
func (s *Service) Resolve(question string) Reply {
	if text, ok := s.script[strings.TrimSpace(question)]; ok {
		return Reply{Text: text, Scripted: true}
	}
	return Reply{Text: s.fallback, Scripted: false}
}

// Ask resolves the reply immediately but delivers it only after the typing
// delay. If ctx is cancelled before the delay elapses the reply is dropped
// and ctx.Err() returned.
func (s *Service) Ask(ctx context.Context, question string) (Reply, error) {
	reply := s.Resolve(question)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.metrics.IncrementCancelled()
		return Reply{}, ctx.Err()
	case <-timer.C:
	}

	s.metrics.IncrementReplies(reply.Scripted)
	return reply, nil
}
