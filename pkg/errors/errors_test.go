// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "package_not_found",
			code:    errors.ErrPackageNotFound,
			message: `Could not find package "acme/x" in your project.`,
			wantStr: `[PACKAGE_NOT_FOUND] Could not find package "acme/x" in your project.`,
		},
		{
			name:    "unknown_link_type",
			code:    errors.ErrUnknownLinkType,
			message: "Unexpected link type: conflict",
			wantStr: "[UNKNOWN_LINK_TYPE] Unexpected link type: conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRepositoryFormat, "unsupported lockfile version: %d", 1)
	assert.Equal(t, "unsupported lockfile version: 1", err.Message)
	assert.Equal(t, errors.ErrRepositoryFormat, err.Code)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrRepositoryLoad, "cannot read repository")

		assert.Equal(t, errors.ErrRepositoryLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[REPOSITORY_LOAD] cannot read repository: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownLinkType, "bad type").
		WithDetail("token", "conflicts").
		WithDetail("valid", []string{"require", "require-dev"})

	assert.Equal(t, "conflicts", err.Details["token"])
	assert.Equal(t, []string{"require", "require-dev"}, err.Details["valid"])
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"path": "/project/vendor/composer/installed.json",
		"size": 1024,
	}

	err := errors.New(errors.ErrRepositoryLoad, "cannot read").WithDetails(details)
	for k, v := range details {
		assert.Equal(t, v, err.Details[k])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrPackageNotFound, "error 1")
	err2 := errors.New(errors.ErrPackageNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code is equal")
	assert.False(t, err1.Is(err3), "different codes are not equal")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is works with DepsError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad toml"),
			code:     errors.ErrConfigParse,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrPackageNotFound, "missing").WithDetail("package", "acme/x")

	assert.Equal(t, errors.ErrPackageNotFound, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))

	assert.Equal(t, "acme/x", errors.GetErrorDetails(err)["package"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	loadErr := errors.Wrap(rootCause, errors.ErrRepositoryLoad, "cannot read installed.json")
	configErr := errors.Wrap(loadErr, errors.ErrConfigLoad, "failed to load repositories")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var depsErr *errors.DepsError
	require.True(t, stderrors.As(configErr.Unwrap(), &depsErr))
	assert.Equal(t, errors.ErrRepositoryLoad, depsErr.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
