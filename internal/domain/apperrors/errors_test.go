package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_IsMatchesKind(t *testing.T) {
	err := NewResourceNotFound("workspace", "abc")

	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.False(t, errors.Is(err, ErrActionNotAuthorized))
	assert.Equal(t, "Unable to find workspace abc", err.Error())
}

func TestAppError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update member: %w", NewAdminRemovalForbidden())

	require.ErrorIs(t, wrapped, ErrAdminRemovalForbidden)

	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "AE-APP-4038", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestAppError_Codes(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NewInvalidParameter("username or userGroupId"), "AE-APP-4000", http.StatusBadRequest},
		{NewActionNotAuthorized("Change permissionGroup of a member"), "AE-APP-4026", http.StatusForbidden},
		{NewResourceNotFound("user group", "1"), "AE-APP-4027", http.StatusNotFound},
		{NewAdminRemovalForbidden(), "AE-APP-4038", http.StatusBadRequest},
		{NewInconsistentSnapshot("user group", "1"), "AE-APP-5000", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
