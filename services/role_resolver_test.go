package services

import (
	"testing"

	"hotelpms/constants"
	"hotelpms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeStaffLookup(roles map[string]int) StaffLookup {
	return func(email string) (int, bool) {
		role, ok := roles[email]
		return role, ok
	}
}

func TestResolveRoleFromTokenClaims(t *testing.T) {
	resolution := NewRoleResolution(fakeStaffLookup(nil), nil, constants.RoleSuperAdmin)

	role, err := resolution.ResolveRole(Identity{TokenRole: constants.RoleAdmin, HasTokenRole: true})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, role)
}

func TestResolveRoleFallsBackToStaffTable(t *testing.T) {
	lookup := fakeStaffLookup(map[string]int{"staff@hotel.test": constants.RoleStaff})
	resolution := NewRoleResolution(lookup, nil, constants.RoleSuperAdmin)

	role, err := resolution.ResolveRole(Identity{Email: "staff@hotel.test"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStaff, role)
}

func TestResolveRoleFallsBackToAllowlist(t *testing.T) {
	resolution := NewRoleResolution(fakeStaffLookup(nil), []string{"Owner@Hotel.test"}, constants.RoleSuperAdmin)

	// Allowlist matching is case-insensitive.
	role, err := resolution.ResolveRole(Identity{Email: "owner@hotel.test"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleSuperAdmin, role)
}

func TestResolveRoleOrderMatters(t *testing.T) {
	// Token claim wins even when the staff table disagrees.
	lookup := fakeStaffLookup(map[string]int{"admin@hotel.test": constants.RoleStaff})
	resolution := NewRoleResolution(lookup, nil, constants.RoleSuperAdmin)

	role, err := resolution.ResolveRole(Identity{
		TokenRole:    constants.RoleAdmin,
		HasTokenRole: true,
		Email:        "admin@hotel.test",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, role)
}

func TestResolveRoleUnknownIdentityFails(t *testing.T) {
	resolution := NewRoleResolution(fakeStaffLookup(nil), []string{"owner@hotel.test"}, constants.RoleSuperAdmin)

	_, err := resolution.ResolveRole(Identity{Email: "stranger@hotel.test"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRole))
}

func TestResolveRoleZeroTokenRoleIsNotAClaim(t *testing.T) {
	lookup := fakeStaffLookup(map[string]int{"staff@hotel.test": constants.RoleStaff})
	resolution := NewRoleResolution(lookup, nil, constants.RoleSuperAdmin)

	role, err := resolution.ResolveRole(Identity{TokenRole: 0, HasTokenRole: true, Email: "staff@hotel.test"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStaff, role)
}
