package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"

	"github.com/powergrid/intelligence-api/internal/compliance/domain"
)

// Classify tags err with the failure kind the boundary layer reports.
func Classify(provider string, err error) *domain.UpstreamError {
	if err == nil {
		return nil
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue
	}

	out := &domain.UpstreamError{Kind: domain.KindNetwork, Provider: provider, Err: err}

	var (
		oaErr   *openai.Error
		antErr  *anthropic.Error
		synErr  *json.SyntaxError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		out.Kind = domain.KindTimeout
	case errors.Is(err, domain.ErrEmptyCompletion):
		out.Kind = domain.KindMalformed
	case errors.As(err, &oaErr):
		out.StatusCode = oaErr.StatusCode
		quota := oaErr.Code == "insufficient_quota" || strings.Contains(oaErr.RawJSON(), "insufficient_quota")
		out.Kind = kindForStatus(oaErr.StatusCode, quota)
	case errors.As(err, &antErr):
		out.StatusCode = antErr.StatusCode
		out.Kind = kindForStatus(antErr.StatusCode, false)
	case errors.As(err, &synErr), errors.As(err, &typeErr):
		out.Kind = domain.KindMalformed
	}
	return out
}

func kindForStatus(status int, quota bool) domain.UpstreamErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.KindAuth
	case status == http.StatusTooManyRequests && quota:
		return domain.KindQuota
	case status == http.StatusTooManyRequests:
		return domain.KindRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return domain.KindTimeout
	default:
		return domain.KindUpstreamStatus
	}
}
