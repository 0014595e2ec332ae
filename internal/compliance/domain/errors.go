package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuestion   = errors.New("question cannot be empty")
	ErrEmptyCompletion = errors.New("model returned no text")
)

// UpstreamErrorKind classifies a failed call to the language model API.
type UpstreamErrorKind string

const (
	KindNetwork        UpstreamErrorKind = "network"
	KindTimeout        UpstreamErrorKind = "timeout"
	KindAuth           UpstreamErrorKind = "auth"
	KindQuota          UpstreamErrorKind = "quota"
	KindRateLimited    UpstreamErrorKind = "rate_limited"
	KindUpstreamStatus UpstreamErrorKind = "upstream_status"
	KindMalformed      UpstreamErrorKind = "malformed"
)

type UpstreamError struct {
	Kind       UpstreamErrorKind
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s upstream %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s upstream %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
