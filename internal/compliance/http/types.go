package http

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question      string `json:"question"`
	ContextFilter string `json:"context_filter,omitempty"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
