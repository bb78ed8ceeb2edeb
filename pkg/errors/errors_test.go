package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithCode(t *testing.T) {
	err := WrapWithCode(ErrForbidden, "not_owner", "only the author can delete a story")

	assert.True(t, IsForbidden(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "not_owner", GetCode(err))
	assert.Equal(t, "only the author can delete a story", GetMessage(err))
	assert.Equal(t, "only the author can delete a story: forbidden", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, WrapWithCode(nil, "code", "ignored"))
}

func TestCodeSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("delete story: %w", WrapWithCode(ErrConflict, "in_flight", "delete already running"))

	assert.True(t, IsConflict(err))
	assert.Equal(t, "in_flight", GetCode(err))
	assert.Equal(t, "delete already running", GetMessage(err))
	assert.Equal(t, "", GetMessage(nil))
}
