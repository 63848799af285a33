package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorUsesDetail(t *testing.T) {
	err := NewHTTPError(http.StatusUnauthorized, []byte(`{"detail":"Token is invalid or expired"}`), "request failed")

	assert.Contains(t, err.Error(), "Token is invalid or expired")
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, http.StatusUnauthorized, err.Code())
}

func TestHTTPErrorFallback(t *testing.T) {
	err := NewHTTPError(http.StatusBadGateway, []byte("<html>bad gateway</html>"), "request failed")
	assert.Contains(t, err.Error(), "request failed")

	err = NewHTTPError(http.StatusBadGateway, nil, "request failed")
	assert.Contains(t, err.Error(), "request failed")
}

func TestExtractHTTPError(t *testing.T) {
	code, ok := ExtractHTTPError(NewHTTPError(http.StatusNotFound, nil, "missing"))
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)

	_, ok = ExtractHTTPError(errors.New("plain"))
	assert.False(t, ok)
}
