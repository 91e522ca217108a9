package authz

import (
	"net/http"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"
)

const (
	RoleEmployer  = "employer"
	RoleJobseeker = "jobseeker"
)

var (
	ErrRoleNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrSelfAction = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot perform this action on your own resource",
		http.StatusBadRequest,
	)
)

// Policy answers "may this identity perform this action on this resource"
// for every mutating operation. Every ownership or role comparison in the
// system goes through here rather than being re-implemented per handler.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

func ValidRole(role string) bool {
	return role == RoleEmployer || role == RoleJobseeker
}

// RoleAllowed reports whether role is one of the allowed roles.
func RoleAllowed(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole gates an action to a single role.
func (p *Policy) RequireRole(actorRole, required string) error {
	if actorRole != required {
		return ErrRoleNotAllowed
	}
	return nil
}

// RequireOwnership gates update/delete/status-change operations to the
// resource's recorded owner. A mismatch is a visible denial (Forbidden).
func (p *Policy) RequireOwnership(actorID, ownerID string) error {
	if actorID == "" || actorID != ownerID {
		return ErrNotOwner
	}
	return nil
}

// RequireScopedOwnership is the existence-hiding variant: a resource owned
// by someone else must look identical to a resource that does not exist, so
// the denial is Not-Found rather than Forbidden.
func (p *Policy) RequireScopedOwnership(actorID, ownerID string) error {
	if actorID == "" || actorID != ownerID {
		return apperror.ErrNotFound
	}
	return nil
}

// RejectSelfAction denies an action when the actor is the resource owner,
// e.g. an employer applying to their own job.
func (p *Policy) RejectSelfAction(actorID, ownerID string) error {
	if actorID != "" && actorID == ownerID {
		return ErrSelfAction
	}
	return nil
}
