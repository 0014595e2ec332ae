package http

import (
	"context"
	"net/http"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"

	"github.com/powergrid/intelligence-api/internal/compliance/domain"
	"github.com/powergrid/intelligence-api/internal/compliance/service"
)

const (
	// UpstreamErrorHeader carries the failure kind when the model call failed.
	UpstreamErrorHeader = "X-Upstream-Error"

	defaultMaxBodyBytes = 64 << 10
)

// Answerer is satisfied by *service.Engine.
type Answerer interface {
	Answer(ctx context.Context, question string) domain.Result
}

type Options struct {
	// StrictUpstreamErrors maps upstream failures to 5xx statuses instead of
	// returning the soft error answer with 200.
	StrictUpstreamErrors bool
	MaxBodyBytes         int64
}

type Handler struct {
	engine       Answerer
	strict       bool
	maxBodyBytes int64
}

func NewHandler(engine Answerer, opts Options) *Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{
		engine:       engine,
		strict:       opts.StrictUpstreamErrors,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}

// Register mounts the ask endpoint at /ask and at the legacy /api/compliance/ask path.
func (h *Handler) Register(r gin.IRouter) {
	limit := limits.RequestSizeLimiter(h.maxBodyBytes)
	r.POST("/ask", limit, h.Ask)
	r.POST("/api/compliance/ask", limit, h.Ask)
}

func (h *Handler) Ask(c *gin.Context) {
	var body AskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		if c.IsAborted() {
			// body size limiter already answered 413
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
		return
	}

	q, err := domain.NewQuery(body.Question, body.ContextFilter)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Question cannot be empty"})
		return
	}

	ctx := c.Request.Context()
	logger := service.NewLogger(ctx)
	if !q.ContextFilter.Known() {
		logger.LogWarnf("ask", "unrecognised context_filter=%q", q.ContextFilter)
	}
	logger.LogInfof("ask", "context_filter=%s question_len=%d", q.ContextFilter, len(q.Question))

	res := h.engine.Answer(ctx, q.Question)
	if res.Failed() {
		c.Header(UpstreamErrorHeader, string(res.Err.Kind))
	}
	c.JSON(h.statusFor(res), res.Answer)
}

func (h *Handler) statusFor(res domain.Result) int {
	if !res.Failed() || !h.strict {
		return http.StatusOK
	}
	switch res.Err.Kind {
	case domain.KindTimeout:
		return http.StatusGatewayTimeout
	case domain.KindQuota, domain.KindRateLimited:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
