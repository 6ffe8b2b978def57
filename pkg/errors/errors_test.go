// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code extraction

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skaff/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "template_not_found",
			code:    errors.ErrTemplateNotFound,
			message: "unknown language",
			wantStr: "[TEMPLATE_NOT_FOUND] unknown language",
		},
		{
			name:    "conflict",
			code:    errors.ErrConflict,
			message: "path already exists",
			wantStr: "[CONFLICT] path already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := errors.Wrap(inner, errors.ErrFileWrite, "failed to write stub")

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrFileWrite, err.Code)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "disk full")

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "ignored"))
}

func TestIsByCode(t *testing.T) {
	err := errors.Newf(errors.ErrNoEditor, "no editor on PATH")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNoEditor, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrEditorExit, "")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.ErrPermission, errors.GetCode(errors.New(errors.ErrPermission, "denied")))
	assert.Equal(t, errors.ErrUnknown, errors.GetCode(stderrors.New("plain")))

	wrapped := errors.Wrap(errors.New(errors.ErrConflict, "exists"), errors.ErrInternal, "outer")
	assert.Equal(t, errors.ErrInternal, errors.GetCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrEditorExit, "editor failed").WithDetail("code", 2)
	assert.Equal(t, 2, err.Details["code"])
}
