package translate

import (
	"errors"
	"fmt"
)

// Sentinel errors for translation operations.
var (
	// ErrEmptyQuery indicates the request query is empty.
	ErrEmptyQuery = errors.New("empty query")

	// ErrQueryTooLong indicates the query exceeds MaxQueryBytes.
	ErrQueryTooLong = errors.New("query exceeds maximum request size")

	// ErrUnauthorized indicates the app id is invalid or the service is
	// not enabled for it (error codes 52003, 58000).
	ErrUnauthorized = errors.New("unauthorized app id")

	// ErrInvalidSign indicates the request signature was rejected (54001).
	ErrInvalidSign = errors.New("invalid request signature")

	// ErrRateLimited indicates the query-per-second or long-query limit
	// was hit (54003, 54005).
	ErrRateLimited = errors.New("rate limited")

	// ErrInsufficientBalance indicates the account has no quota left (54004).
	ErrInsufficientBalance = errors.New("insufficient account balance")

	// ErrUnsupportedLanguage indicates the from/to pair is not supported (58001).
	ErrUnsupportedLanguage = errors.New("unsupported language pair")

	// ErrInvalidRequest indicates a required parameter was missing or
	// malformed (54000).
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrServiceUnavailable indicates a transient API-side failure
	// (52001, 52002, 58002).
	ErrServiceUnavailable = errors.New("translation service unavailable")

	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = errors.New("malformed API response")
)

// Error wraps a translation failure with its operation and, for API-level
// failures, the Baidu error code.
type Error struct {
	Op        string // operation that failed ("translate")
	Code      string // Baidu API error code, empty for transport failures
	Msg       string // API error message, if any
	Err       error  // underlying error
	Retryable bool   // whether the failure is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		if e.Msg != "" {
			return fmt.Sprintf("%s: %v (code %s: %s)", e.Op, e.Err, e.Code, e.Msg)
		}
		return fmt.Sprintf("%s: %v (code %s)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is likely transient and worth retrying.
func IsRetryable(err error) bool {
	var terr *Error
	if errors.As(err, &terr) {
		return terr.Retryable
	}
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServiceUnavailable)
}

// apiError maps a Baidu error code to a sentinel and retryability.
func apiError(code string) (error, bool) {
	switch code {
	case "52001", "52002", "58002":
		return ErrServiceUnavailable, true
	case "52003", "58000":
		return ErrUnauthorized, false
	case "54000":
		return ErrInvalidRequest, false
	case "54001":
		return ErrInvalidSign, false
	case "54003", "54005":
		return ErrRateLimited, true
	case "54004":
		return ErrInsufficientBalance, false
	case "58001":
		return ErrUnsupportedLanguage, false
	default:
		return fmt.Errorf("API error %s", code), false
	}
}
