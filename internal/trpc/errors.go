package trpc

import "fmt"

// TransportError is returned for any non-2xx HTTP response.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	// Message is the server's error message when the body was a tRPC error.
	Message string
	Body    []byte
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

// MalformedResponseError reports a response that parsed but did not have the
// expected shape.
type MalformedResponseError struct {
	Procedure string
	Reason    string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s response: %s: %v", e.Procedure, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s response: %s", e.Procedure, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
