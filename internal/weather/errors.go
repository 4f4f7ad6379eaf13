package weather

import "errors"

var (
	// ErrInvalidParameter marks a request rejected before any upstream call
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoHistoricalData means the archive answered with no dates at all
	ErrNoHistoricalData = errors.New("no historical data found for this date range")
	// ErrUpstreamUnavailable covers network errors, non-2xx answers and unusable bodies
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// UpstreamError carries the provider failure detail while matching ErrUpstreamUnavailable
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstreamUnavailable, e.Err}
}

func upstreamErr(err error) error {
	return &UpstreamError{Err: err}
}
