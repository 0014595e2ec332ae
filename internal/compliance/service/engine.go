package service

import (
	"context"
	"time"

	"github.com/powergrid/intelligence-api/internal/compliance/domain"
	"github.com/powergrid/intelligence-api/internal/compliance/knowledge"
	"github.com/powergrid/intelligence-api/internal/compliance/llm"
)

type EngineOptions struct {
	Model     string
	Timeout   time.Duration
	MaxTokens int
	Metrics   *Metrics
}

// Engine answers compliance questions against the static regulatory context.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	completer    llm.Completer
	systemPrompt string
	model        string
	timeout      time.Duration
	maxTokens    int
	metrics      *Metrics
}

// NewEngine builds an engine. A nil completer puts it in simulation mode.
func NewEngine(completer llm.Completer, opts EngineOptions) *Engine {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Engine{
		completer:    completer,
		systemPrompt: knowledge.SystemPrompt(knowledge.EED),
		model:        opts.Model,
		timeout:      opts.Timeout,
		maxTokens:    opts.MaxTokens,
		metrics:      opts.Metrics,
	}
}

// Simulated reports whether the engine answers without calling a model.
func (e *Engine) Simulated() bool {
	return e.completer == nil
}

// Answer never returns an error: upstream failures come back as a
// ModeError result carrying the classified failure.
func (e *Engine) Answer(ctx context.Context, question string) domain.Result {
	logger := NewLogger(ctx)

	if e.completer == nil {
		logger.LogInfo("answer", "no API key configured, returning simulation answer")
		e.metrics.recordAnswer(domain.ModeSimulation)
		return domain.Result{Answer: simulationAnswer(), Mode: domain.ModeSimulation}
	}

	provider := e.completer.Provider()
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	text, err := e.completer.Complete(callCtx, llm.ChatRequest{
		Model:       e.model,
		System:      e.systemPrompt,
		User:        question,
		Temperature: Temperature,
		MaxTokens:   e.maxTokens,
	})
	duration := time.Since(start)

	if err != nil {
		ue := llm.Classify(provider, err)
		e.metrics.recordUpstreamCall(provider, duration, ue)
		e.metrics.recordAnswer(domain.ModeError)
		logger.LogError("answer", ue)
		return domain.Result{Answer: errorAnswer(), Mode: domain.ModeError, Err: ue}
	}

	e.metrics.recordUpstreamCall(provider, duration, nil)
	e.metrics.recordAnswer(domain.ModeLive)
	logger.LogInfof("answer", "provider=%s model=%s latency=%s", provider, e.model, duration)

	return domain.Result{
		Answer: domain.Answer{
			Answer:          text,
			Citations:       []domain.Citation{{Document: knowledge.EED.Title, Section: "Derived from Context"}},
			ConfidenceScore: LiveConfidence,
		},
		Mode: domain.ModeLive,
	}
}

func simulationAnswer() domain.Answer {
	return domain.Answer{
		Answer:          SimulationText,
		Citations:       []domain.Citation{{Document: "Simulation DB", Section: "Mock Section"}},
		ConfidenceScore: SimulationConfidence,
	}
}

func errorAnswer() domain.Answer {
	return domain.Answer{
		Answer:          ErrorText,
		Citations:       []domain.Citation{},
		ConfidenceScore: ErrorConfidence,
	}
}
