// Package policy is the single source of truth for role-based access
// decisions. Handlers and usecases consult it instead of comparing role
// strings inline.
package policy

import (
	"errors"
	"fmt"
	"strings"
)

// Action enumerates everything an actor can ask the system to do.
type Action string

const (
	ActionPatientList   Action = "patient.list"
	ActionPatientRead   Action = "patient.read"
	ActionPatientCreate Action = "patient.create"
	ActionPatientUpdate Action = "patient.update"
	ActionPatientDelete Action = "patient.delete"

	ActionVitalSignRead   Action = "vitalsign.read"
	ActionVitalSignCreate Action = "vitalsign.create"
	ActionVitalSignUpdate Action = "vitalsign.update"
	ActionVitalSignDelete Action = "vitalsign.delete"

	ActionUserList       Action = "user.list"
	ActionUserRead       Action = "user.read"
	ActionUserCreate     Action = "user.create"
	ActionUserUpdate     Action = "user.update"
	ActionUserDelete     Action = "user.delete"
	ActionUserAssignRole Action = "user.assign_role"

	ActionRoleList       Action = "role.list"
	ActionStatisticsRead Action = "statistics.read"
	ActionOwnProfile     Action = "profile.self"
)

// Normalized role labels. Comparison is case-insensitive everywhere.
const (
	roleAdministrador = "administrador"
	roleEnfermero     = "enfermero"
)

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID            int
	Role          string
	Authenticated bool
}

// Target describes the user a user-management action operates on, or the
// role a role-assignment action would grant.
type Target struct {
	UserID int
	Role   string
}

// ErrUnauthenticated is returned for any action without an authenticated actor.
var ErrUnauthenticated = errors.New("authentication required")

// DeniedError is a forbidden decision carrying a human-readable reason.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Reason)
}

// Denial reasons
const (
	ReasonInsufficientRole     = "insufficient role"
	ReasonPeerAdministrator    = "cannot modify peer administrator"
	ReasonGrantAdministrator   = "cannot grant administrator role"
	ReasonDeleteSelf           = "cannot delete self"
)

// allowedRoles gates each action class. A nil entry means any authenticated
// role may perform the action. Roles outside this table only ever pass the
// nil-gated actions, so an unknown future role keeps self-profile access and
// nothing more.
var allowedRoles = map[Action][]string{
	ActionPatientList:   nil,
	ActionPatientRead:   nil,
	ActionPatientCreate: {roleEnfermero, roleAdministrador},
	ActionPatientUpdate: {roleEnfermero, roleAdministrador},
	ActionPatientDelete: {roleEnfermero, roleAdministrador},

	ActionVitalSignRead:   nil,
	ActionVitalSignCreate: {roleEnfermero, roleAdministrador},
	ActionVitalSignUpdate: {roleEnfermero, roleAdministrador},
	ActionVitalSignDelete: {roleAdministrador},

	ActionUserList:       {roleAdministrador},
	ActionUserRead:       {roleAdministrador},
	ActionUserCreate:     {roleAdministrador},
	ActionUserUpdate:     {roleAdministrador},
	ActionUserDelete:     {roleAdministrador},
	ActionUserAssignRole: {roleAdministrador},

	ActionRoleList:       nil,
	ActionStatisticsRead: {roleAdministrador},
	ActionOwnProfile:     nil,
}

// Authorize decides whether actor may perform action. target must be given
// for user-management and role-assignment actions and is ignored otherwise.
// Rules are evaluated in fixed precedence; the first violation wins.
func Authorize(actor Actor, action Action, target *Target) error {
	if !actor.Authenticated {
		return ErrUnauthenticated
	}

	actorRole := strings.ToLower(actor.Role)

	if roles, gated := allowedRoles[action]; gated && roles != nil {
		if !containsRole(roles, actorRole) {
			return &DeniedError{Reason: ReasonInsufficientRole}
		}
	}

	targetRole := ""
	if target != nil {
		targetRole = strings.ToLower(target.Role)
	}

	// Administrators may not touch peer administrators through user
	// management. Their own account is still editable through the
	// self-profile action, which never reaches this rule.
	if (action == ActionUserUpdate || action == ActionUserDelete) &&
		actorRole == roleAdministrador && targetRole == roleAdministrador {
		return &DeniedError{Reason: ReasonPeerAdministrator}
	}

	if action == ActionUserAssignRole &&
		actorRole == roleAdministrador && targetRole == roleAdministrador {
		return &DeniedError{Reason: ReasonGrantAdministrator}
	}

	if action == ActionUserDelete && target != nil && target.UserID == actor.ID {
		return &DeniedError{Reason: ReasonDeleteSelf}
	}

	return nil
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
