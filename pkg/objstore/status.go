package objstore

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// Status is the outcome of a single remote call attempt. The code
// classifies the outcome; the message is opaque text from the transport.
// Exhausted is set by RetryClient when a transient error outlived the
// retry policy, so callers can tell a policy exhaustion apart from a raw
// permanent error.
type Status struct {
	Code      codes.Code
	Message   string
	Exhausted bool
}

// transientCodes are the outcomes worth reissuing unchanged: the server
// was overloaded, rate limited us, timed out, or hit an internal fault.
var transientCodes = map[codes.Code]bool{
	codes.Unavailable:       true,
	codes.DeadlineExceeded:  true,
	codes.ResourceExhausted: true,
	codes.Aborted:           true,
	codes.Internal:          true,
}

// StatusOK is the successful outcome.
func StatusOK() Status {
	return Status{Code: codes.OK}
}

// NewStatus builds a Status from a classification code and message text.
func NewStatus(code codes.Code, message string) Status {
	return Status{Code: code, Message: message}
}

func (s Status) OK() bool {
	return s.Code == codes.OK
}

// Transient reports whether the attempt may succeed if retried unchanged.
func (s Status) Transient() bool {
	return transientCodes[s.Code]
}

// Permanent reports whether retrying cannot help.
func (s Status) Permanent() bool {
	return !s.OK() && !s.Transient()
}

func (s Status) String() string {
	if s.OK() {
		return "OK"
	}
	if s.Message == "" {
		return s.Code.String()
	}
	return fmt.Sprintf("%s: %s", s.Code, s.Message)
}
