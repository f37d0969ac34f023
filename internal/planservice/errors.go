package planservice

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Failure kinds of a generation call. Use errors.Is against these.
var (
	ErrNetwork           = errors.New("network failure")
	ErrAuth              = errors.New("authentication rejected")
	ErrQuota             = errors.New("rate limit or quota exceeded")
	ErrUpstream          = errors.New("model endpoint error")
	ErrMalformedResponse = errors.New("malformed model response")
)

// GenerationError is returned by Generate for every failure of the external
// call. Kind is one of the Err* sentinels above.
type GenerationError struct {
	Kind       error
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classify maps an error from the OpenAI client onto a GenerationError.
func classify(err error) *GenerationError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &GenerationError{Kind: kindForStatus(apiErr.HTTPStatusCode), StatusCode: apiErr.HTTPStatusCode, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &GenerationError{Kind: kindForStatus(reqErr.HTTPStatusCode), StatusCode: reqErr.HTTPStatusCode, Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &GenerationError{Kind: ErrMalformedResponse, Err: err}
	}

	// transport errors, including a canceled request context
	return &GenerationError{Kind: ErrNetwork, Err: err}
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuth
	case status == http.StatusTooManyRequests:
		return ErrQuota
	default:
		return ErrUpstream
	}
}
