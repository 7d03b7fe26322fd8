package resultpanel

import "time"

// Submission tracks one background fetch started by Panel.Submit.
type Submission struct {
	done chan struct{}
	text string
	err  error
}

func newSubmission() *Submission {
	return &Submission{done: make(chan struct{})}
}

// Done is closed once the final text has been written to the target.
func (s *Submission) Done() <-chan struct{} { return s.done }

// Wait blocks until the submission finishes and returns the final text together
// with the error from writing it to the target, if any.
func (s *Submission) Wait() (string, error) {
	<-s.done
	return s.text, s.err
}

// WaitWithTimeout works like Wait but gives up after timeout with ErrTimeout.
func (s *Submission) WaitWithTimeout(timeout time.Duration) (string, error) {
	select {
	case <-s.done:
		return s.text, s.err
	case <-time.After(timeout):
		return "", ErrTimeout
	}
}

// IsComplete reports whether the submission has finished without blocking.
func (s *Submission) IsComplete() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
