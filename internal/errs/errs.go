package errs

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// httpError defines an error which contains
// an http status code from an API request.
// This facilitates more accurate error handling
// by console commands.
type httpError interface {
	Code() int
}

type HTTPError struct {
	code int
	err  error
}

// NewHTTPError builds an error from an API response. Django REST
// error bodies carry the message under "detail"; when the body
// doesn't parse, fall back to the provided message.
func NewHTTPError(code int, b []byte, fallback string) HTTPError {
	e := errors.New(fallback)

	if b != nil {
		var r struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(b, &r); err == nil && r.Detail != "" {
			e = errors.New(r.Detail)
		}
	}

	return HTTPError{
		code: code,
		err:  e,
	}
}

func (e HTTPError) Error() string {
	return errors.Wrap(e.err, fmt.Sprintf("HTTPError[%v]", e.code)).Error()
}

func (e HTTPError) Code() int {
	return e.code
}

func ExtractHTTPError(err error) (int, bool) {
	e, ok := err.(httpError)
	if !ok {
		return 0, false
	}
	return e.Code(), true
}
