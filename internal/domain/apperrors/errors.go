// Package apperrors defines the failure kinds returned by workspace
// membership operations and their stable codes.
package apperrors

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	InvalidParameter Kind = iota + 1
	ResourceNotFound
	ActionNotAuthorized
	AdminRemovalForbidden
	InconsistentSnapshot
)

type AppError struct {
	Kind    Kind
	Code    string
	Status  int
	Message string
}

func (e *AppError) Error() string { return e.Message }

// Is matches any AppError of the same kind, so errors.Is(err, ErrResourceNotFound)
// holds regardless of the message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidParameter      = &AppError{Kind: InvalidParameter, Code: "AE-APP-4000", Status: http.StatusBadRequest}
	ErrActionNotAuthorized   = &AppError{Kind: ActionNotAuthorized, Code: "AE-APP-4026", Status: http.StatusForbidden}
	ErrResourceNotFound      = &AppError{Kind: ResourceNotFound, Code: "AE-APP-4027", Status: http.StatusNotFound}
	ErrAdminRemovalForbidden = &AppError{Kind: AdminRemovalForbidden, Code: "AE-APP-4038", Status: http.StatusBadRequest}
	ErrInconsistentSnapshot  = &AppError{Kind: InconsistentSnapshot, Code: "AE-APP-5000", Status: http.StatusInternalServerError}
)

func newError(base *AppError, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    base.Kind,
		Code:    base.Code,
		Status:  base.Status,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewInvalidParameter(param string) *AppError {
	return newError(ErrInvalidParameter, "Please enter a valid parameter %s.", param)
}

func NewResourceNotFound(resource string, id string) *AppError {
	return newError(ErrResourceNotFound, "Unable to find %s %s", resource, id)
}

func NewActionNotAuthorized(action string) *AppError {
	return newError(ErrActionNotAuthorized, "Unable to perform %s as you don't have permission", action)
}

func NewAdminRemovalForbidden() *AppError {
	return newError(ErrAdminRemovalForbidden, "Cannot remove the last admin of the workspace")
}

func NewInconsistentSnapshot(resource string, id string) *AppError {
	return newError(ErrInconsistentSnapshot, "%s %s is referenced by a role but no longer exists, please retry", resource, id)
}
