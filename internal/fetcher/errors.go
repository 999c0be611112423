package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrRateLimited is returned when the API throttled the request.
	ErrRateLimited = errors.New("request was rate limited")
	// ErrAttemptsExhausted is returned when a page request failed on every
	// attempt. It wraps the last attempt's failure.
	ErrAttemptsExhausted = errors.New("request attempts exhausted")
	// ErrMissingItemsKey is returned when response envelope has no records array.
	ErrMissingItemsKey = errors.New("response envelope is missing records array")
)
