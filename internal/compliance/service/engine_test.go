package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powergrid/intelligence-api/internal/compliance/domain"
	"github.com/powergrid/intelligence-api/internal/compliance/llm"
)

type stubCompleter struct {
	mu       sync.Mutex
	text     string
	err      error
	delay    time.Duration
	requests []llm.ChatRequest
}

func (s *stubCompleter) Provider() string { return "stub" }

func (s *stubCompleter) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func TestEngine_SimulationMode(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	engine := NewEngine(nil, EngineOptions{Metrics: metrics})
	require.True(t, engine.Simulated())

	first := engine.Answer(context.Background(), "What is the renovation target?")
	second := engine.Answer(context.Background(), "anything")

	assert.Equal(t, domain.ModeSimulation, first.Mode)
	assert.Nil(t, first.Err)
	assert.Equal(t, SimulationText, first.Answer.Answer)
	assert.Equal(t, []domain.Citation{{Document: "Simulation DB", Section: "Mock Section"}}, first.Answer.Citations)
	assert.Equal(t, 1.0, first.Answer.ConfidenceScore)
	assert.Equal(t, first, second)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.answers.WithLabelValues("simulation")))
}

func TestEngine_LiveAnswer(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	stub := &stubCompleter{text: "Public bodies must renovate 3% each year (Section 2)."}
	engine := NewEngine(stub, EngineOptions{Model: "gpt-4o-mini", MaxTokens: 256, Metrics: metrics})
	require.False(t, engine.Simulated())

	res := engine.Answer(context.Background(), "What is the renovation target?")

	assert.Equal(t, domain.ModeLive, res.Mode)
	assert.False(t, res.Failed())
	assert.Equal(t, "Public bodies must renovate 3% each year (Section 2).", res.Answer.Answer)
	assert.Equal(t, []domain.Citation{{Document: "EU EED Directive 2023", Section: "Derived from Context"}}, res.Answer.Citations)
	assert.Equal(t, 0.98, res.Answer.ConfidenceScore)

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, "What is the renovation target?", req.User)
	assert.Equal(t, 0.1, req.Temperature)
	assert.Equal(t, 256, req.MaxTokens)
	assert.Contains(t, req.System, "SECTION 3: Metering.")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamRequests.WithLabelValues("stub", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.answers.WithLabelValues("live")))
}

func TestEngine_DefaultModel(t *testing.T) {
	stub := &stubCompleter{text: "ok"}
	engine := NewEngine(stub, EngineOptions{})

	engine.Answer(context.Background(), "q")

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "gpt-3.5-turbo", stub.requests[0].Model)
}

func TestEngine_UpstreamFailure(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	stub := &stubCompleter{err: &domain.UpstreamError{Kind: domain.KindQuota, Provider: "stub", StatusCode: 429, Err: errors.New("quota")}}
	engine := NewEngine(stub, EngineOptions{Metrics: metrics})

	res := engine.Answer(context.Background(), "What is the renovation target?")

	assert.Equal(t, domain.ModeError, res.Mode)
	require.True(t, res.Failed())
	assert.Equal(t, domain.KindQuota, res.Err.Kind)
	assert.Equal(t, ErrorText, res.Answer.Answer)
	assert.NotNil(t, res.Answer.Citations)
	assert.Empty(t, res.Answer.Citations)
	assert.Equal(t, 0.0, res.Answer.ConfidenceScore)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamRequests.WithLabelValues("stub", "quota")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.answers.WithLabelValues("error")))
}

func TestEngine_UnclassifiedFailureIsNetwork(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection reset by peer")}
	engine := NewEngine(stub, EngineOptions{})

	res := engine.Answer(context.Background(), "q")

	require.True(t, res.Failed())
	assert.Equal(t, domain.KindNetwork, res.Err.Kind)
	assert.Equal(t, "stub", res.Err.Provider)
}

func TestEngine_Timeout(t *testing.T) {
	stub := &stubCompleter{text: "late", delay: time.Second}
	engine := NewEngine(stub, EngineOptions{Timeout: 20 * time.Millisecond})

	start := time.Now()
	res := engine.Answer(context.Background(), "q")

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	require.True(t, res.Failed())
	assert.Equal(t, domain.KindTimeout, res.Err.Kind)
	assert.Equal(t, ErrorText, res.Answer.Answer)
}

func TestEngine_ConcurrentAnswers(t *testing.T) {
	stub := &stubCompleter{text: "ok"}
	engine := NewEngine(stub, EngineOptions{Metrics: NewMetrics(prometheus.NewRegistry())})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := engine.Answer(context.Background(), "q")
			assert.Equal(t, domain.ModeLive, res.Mode)
		}()
	}
	wg.Wait()

	assert.Len(t, stub.requests, 20)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.recordAnswer(domain.ModeLive)
		m.recordUpstreamCall("stub", time.Second, nil)
	})
}
