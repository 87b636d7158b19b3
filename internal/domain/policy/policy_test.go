package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeUnauthenticated(t *testing.T) {
	actions := []Action{
		ActionPatientList, ActionPatientCreate, ActionVitalSignRead,
		ActionUserList, ActionStatisticsRead, ActionOwnProfile,
	}
	for _, action := range actions {
		t.Run(string(action), func(t *testing.T) {
			err := Authorize(Actor{}, action, nil)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestAuthorizeRoleGates(t *testing.T) {
	admin := Actor{ID: 1, Role: "Administrador", Authenticated: true}
	nurse := Actor{ID: 2, Role: "Enfermero", Authenticated: true}
	unknown := Actor{ID: 3, Role: "Becario", Authenticated: true}

	tests := []struct {
		name   string
		actor  Actor
		action Action
		denied bool
	}{
		{"nurse reads patients", nurse, ActionPatientRead, false},
		{"nurse creates patients", nurse, ActionPatientCreate, false},
		{"nurse creates vital signs", nurse, ActionVitalSignCreate, false},
		{"nurse cannot delete vital signs", nurse, ActionVitalSignDelete, true},
		{"nurse cannot list users", nurse, ActionUserList, true},
		{"nurse cannot read statistics", nurse, ActionStatisticsRead, true},
		{"admin deletes vital signs", admin, ActionVitalSignDelete, false},
		{"admin lists users", admin, ActionUserList, false},
		{"admin reads statistics", admin, ActionStatisticsRead, false},
		{"unknown role reads patients", unknown, ActionPatientRead, false},
		{"unknown role cannot create patients", unknown, ActionPatientCreate, true},
		{"unknown role keeps own profile", unknown, ActionOwnProfile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.action, nil)
			if tt.denied {
				var denied *DeniedError
				assert.True(t, errors.As(err, &denied))
				assert.Equal(t, ReasonInsufficientRole, denied.Reason)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeRoleCaseInsensitive(t *testing.T) {
	for _, role := range []string{"administrador", "ADMINISTRADOR", "Administrador"} {
		t.Run(role, func(t *testing.T) {
			actor := Actor{ID: 1, Role: role, Authenticated: true}
			assert.NoError(t, Authorize(actor, ActionStatisticsRead, nil))
		})
	}
}

func TestAuthorizePeerAdministrator(t *testing.T) {
	admin := Actor{ID: 1, Role: "Administrador", Authenticated: true}
	adminTarget := &Target{UserID: 2, Role: "Administrador"}
	nurseTarget := &Target{UserID: 3, Role: "Enfermero"}

	t.Run("cannot update peer administrator", func(t *testing.T) {
		err := Authorize(admin, ActionUserUpdate, adminTarget)
		var denied *DeniedError
		assert.True(t, errors.As(err, &denied))
		assert.Equal(t, ReasonPeerAdministrator, denied.Reason)
	})

	t.Run("cannot delete peer administrator", func(t *testing.T) {
		err := Authorize(admin, ActionUserDelete, adminTarget)
		var denied *DeniedError
		assert.True(t, errors.As(err, &denied))
		assert.Equal(t, ReasonPeerAdministrator, denied.Reason)
	})

	t.Run("can update nurse", func(t *testing.T) {
		assert.NoError(t, Authorize(admin, ActionUserUpdate, nurseTarget))
	})

	t.Run("peer rule fires before self-delete rule", func(t *testing.T) {
		// Deleting one's own admin account trips the peer rule first.
		selfTarget := &Target{UserID: admin.ID, Role: "Administrador"}
		err := Authorize(admin, ActionUserDelete, selfTarget)
		var denied *DeniedError
		assert.True(t, errors.As(err, &denied))
		assert.Equal(t, ReasonPeerAdministrator, denied.Reason)
	})
}

func TestAuthorizeRoleEscalation(t *testing.T) {
	admin := Actor{ID: 1, Role: "Administrador", Authenticated: true}

	t.Run("cannot grant administrator", func(t *testing.T) {
		err := Authorize(admin, ActionUserAssignRole, &Target{Role: "Administrador"})
		var denied *DeniedError
		assert.True(t, errors.As(err, &denied))
		assert.Equal(t, ReasonGrantAdministrator, denied.Reason)
	})

	t.Run("can grant nurse", func(t *testing.T) {
		assert.NoError(t, Authorize(admin, ActionUserAssignRole, &Target{Role: "Enfermero"}))
	})
}

func TestAuthorizeSelfDelete(t *testing.T) {
	admin := Actor{ID: 7, Role: "Administrador", Authenticated: true}

	err := Authorize(admin, ActionUserDelete, &Target{UserID: 7, Role: "Enfermero"})
	var denied *DeniedError
	assert.True(t, errors.As(err, &denied))
	assert.Equal(t, ReasonDeleteSelf, denied.Reason)
}
