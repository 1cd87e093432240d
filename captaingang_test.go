package captaingang_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/captaingang"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := captaingang.Errorf(captaingang.EUNAVAILABLE, "HTTP %d for %s", 503, "https://example.com")

	assert.Equal(t, captaingang.EUNAVAILABLE, captaingang.ErrorCode(err))
	assert.Equal(t, "HTTP 503 for https://example.com", captaingang.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching profile: %w", captaingang.Errorf(captaingang.EUNAVAILABLE, "timeout"))

	assert.Equal(t, captaingang.EUNAVAILABLE, captaingang.ErrorCode(err))
	assert.Equal(t, "timeout", captaingang.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, captaingang.EINTERNAL, captaingang.ErrorCode(err))
	assert.Equal(t, "Internal error", captaingang.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, captaingang.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, captaingang.ErrorMessage(nil))
}
