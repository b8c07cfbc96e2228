package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	cases := []struct {
		status     int
		target     error
		definitive bool
	}{
		{http.StatusNotFound, ErrNotFound, true},
		{http.StatusUnauthorized, ErrUnauthorized, true},
		{http.StatusForbidden, ErrForbidden, true},
		{http.StatusGone, ErrBadRequest, true},
		{http.StatusTooManyRequests, ErrRateLimited, false},
		{http.StatusBadGateway, ErrServiceUnavailable, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			err := FromStatus(tc.status)
			assert.ErrorIs(t, err, tc.target)
			assert.Equal(t, fmt.Sprint(tc.status), GetCode(err))
			assert.Equal(t, tc.definitive, IsDefinitive(err))
		})
	}
}

func TestWrapKeepsChain(t *testing.T) {
	err := Wrap(fmt.Errorf("decode statuses: %w", ErrMalformed), "api page 2")
	assert.True(t, IsMalformed(err))
	assert.False(t, IsDefinitive(err))
	assert.Equal(t, "api page 2: decode statuses: malformed response", err.Error())
	assert.Nil(t, Wrap(nil, "nothing"))
}
