package mcdigest

// DigestUnavailableError indicates that a digest function
// could not be constructed or could not produce a digest.
// It is fatal to any tree build that depends on the digest.
type DigestUnavailableError struct {
	// Name of the digest function, if known.
	Name string

	// The underlying failure, if any.
	Cause error
}

func (e DigestUnavailableError) Error() string {
	msg := "digest unavailable"
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e DigestUnavailableError) Unwrap() error {
	return e.Cause
}
