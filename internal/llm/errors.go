package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a completion failure. The engine surfaces the kind to the
// user but never interprets it further; in particular no kind triggers a
// retry.
type Kind string

const (
	KindAuth       Kind = "auth"
	KindRateLimit  Kind = "rateLimit"
	KindBadRequest Kind = "badRequest"
	KindServer     Kind = "serverError"
	KindNetwork    Kind = "network"
	KindParse      Kind = "parse"
)

// ErrEmptyCompletion marks a completion that succeeded at the HTTP level
// but carried no usable text. Callers check for it before any formatting
// or document mutation.
var ErrEmptyCompletion = errors.New("model returned an empty response")

// Error is a classified provider failure.
type Error struct {
	Kind     Kind
	Provider string
	Status   int
	Message  string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
}

// classifyStatus maps an HTTP status code to a failure kind.
func classifyStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	case status >= 500:
		return KindServer
	default:
		return KindBadRequest
	}
}

func httpError(provider string, status int, body []byte) *Error {
	return &Error{
		Kind:     classifyStatus(status),
		Provider: provider,
		Status:   status,
		Message:  strings.TrimSpace(string(body)),
	}
}

func networkError(provider string, err error) *Error {
	return &Error{Kind: KindNetwork, Provider: provider, Message: err.Error()}
}

func parseError(provider string, err error) *Error {
	return &Error{Kind: KindParse, Provider: provider, Message: err.Error()}
}
