package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrRemoteValidation.WithDetails("Merchandise does not exist")

	assert.ErrorIs(t, detailed, ErrRemoteValidation)
	assert.ErrorIs(t, errors.Wrap(detailed, "add line"), ErrRemoteValidation)
	assert.NotErrorIs(t, detailed, ErrNotFound)
	assert.Equal(t, "Remote service rejected the request: Merchandise does not exist", detailed.Error())
}

func TestRemoteCallError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError(cause, "commerce", "cartCreate")

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "NETWORK_ERROR", err.ErrorCode())
	assert.Equal(t, "cartCreate", err.Details())
	assert.Contains(t, err.Error(), "commerce request failed")

	var appErr AppError
	assert.True(t, errors.As(errors.Wrap(err, "init cart"), &appErr))
}
