package gateway

import (
	"errors"
	"fmt"
)

// Fallback messages for the three failure classes. Callers branch on Status,
// not on these strings.
const (
	msgRejected    = "An error occurred"
	msgNoResponse  = "No response from server. Please check your connection."
	msgSendFailure = "An unknown error occurred"
	msgBadResponse = "Malformed response from server."
)

// APIError is the only error shape gateway callers ever see.
//
// Status carries the HTTP status code of an explicit server rejection, or 0
// when no response was received (network failure, or the request could not be
// constructed or sent). Message is the response body when the server answered,
// otherwise a transport-level description.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Transport reports whether no response reached the client, as opposed to an
// explicit server rejection.
func (e *APIError) Transport() bool {
	return e.Status == 0
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// rejection builds the error for a non-2xx response.
func rejection(status int, body []byte) *APIError {
	msg := string(body)
	if msg == "" {
		msg = msgRejected
	}
	return &APIError{Status: status, Message: msg}
}

// noResponse builds the error for a request that was sent but never answered.
func noResponse() *APIError {
	return &APIError{Status: 0, Message: msgNoResponse}
}

// badResponse builds the error for a success response whose body could not
// be decoded. The status is the one the server answered with, so callers can
// still tell it apart from a transport failure.
func badResponse(status int) *APIError {
	return &APIError{Status: status, Message: msgBadResponse}
}

// sendFailure builds the error for a request that could not be constructed
// or sent at all.
func sendFailure(err error) *APIError {
	msg := msgSendFailure
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Status: 0, Message: msg}
}
