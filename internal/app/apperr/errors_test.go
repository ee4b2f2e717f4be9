package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeAirportNotFound, http.StatusNotFound},
		{CodeInsufficientPath, http.StatusUnprocessableEntity},
		{CodeInternal, http.StatusInternalServerError},
		{Code("whatever"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(string(c.code), func(t *testing.T) {
			assert.Equal(t, c.want, c.code.HTTPStatus())
		})
	}
}

func TestAirportNotFoundNamesCodes(t *testing.T) {
	err := AirportNotFound("DEL", "ZZZ", "ZZZ")
	assert.Contains(t, err.Error(), "ZZZ")
	assert.Contains(t, err.Error(), "DEL")
	assert.Equal(t, CodeAirportNotFound, err.Code)
}

func TestCodeOfThroughWrapping(t *testing.T) {
	cause := errors.New("bad layout")
	err := fmt.Errorf("query: %w", WrapInvalidInput(cause, "departure %q", "x"))

	assert.Equal(t, CodeInvalidInput, CodeOf(err))
	assert.True(t, Is(err, CodeInvalidInput))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	assert.False(t, Is(nil, CodeInternal))
}
