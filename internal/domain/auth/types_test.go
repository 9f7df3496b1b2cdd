package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.Valid(), "role %s should be valid", r)
	}
	assert.False(t, Role("SUPERVISOR").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserSnapshot_HasPermission(t *testing.T) {
	u := UserSnapshot{
		Role:        RoleHR,
		Permissions: []Permission{PermCandidateView, PermCandidateAdd},
	}

	assert.True(t, u.HasPermission(PermCandidateView))
	assert.False(t, u.HasPermission(PermAdminSettings))
	assert.True(t, u.HasAnyPermission(PermAdminSettings, PermCandidateAdd))
	assert.False(t, u.HasAnyPermission(PermAdminSettings, PermAdminRevert))
	assert.True(t, u.HasAllPermissions(PermCandidateView, PermCandidateAdd))
	assert.False(t, u.HasAllPermissions(PermCandidateView, PermAdminSettings))
}

func TestUserSnapshot_HasPermission_EmptySet(t *testing.T) {
	var u UserSnapshot
	assert.False(t, u.HasPermission(PermCandidateView))
	assert.False(t, u.HasAnyPermission(PermCandidateView, PermCandidateAdd))
	// Vacuously true, matching every-of semantics.
	assert.True(t, u.HasAllPermissions())
}

func TestUserSnapshot_HasAnyRole(t *testing.T) {
	u := UserSnapshot{Role: RoleOwner}
	assert.True(t, u.HasAnyRole(RoleAdmin, RoleOwner))
	assert.False(t, u.HasAnyRole(RoleAdmin, RoleHR))
}

func TestRolePermissions(t *testing.T) {
	admin := RolePermissions(RoleAdmin)
	require.NotEmpty(t, admin)

	// Admin carries every permission any other role carries.
	adminSet := make(map[Permission]bool, len(admin))
	for _, p := range admin {
		adminSet[p] = true
	}
	for _, r := range []Role{RoleHR, RoleEA, RoleOwner} {
		for _, p := range RolePermissions(r) {
			assert.True(t, adminSet[p], "admin missing %s from %s", p, r)
		}
	}

	// EA has no approval powers.
	ea := UserSnapshot{Role: RoleEA, Permissions: RolePermissions(RoleEA)}
	assert.False(t, ea.HasPermission(PermShortlistApprove))
	assert.True(t, ea.HasPermission(PermTestEditMarks))

	assert.Nil(t, RolePermissions(Role("UNKNOWN")))
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
	assert.True(t, s.Expired(now.Add(2*time.Minute)))
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, SessionFromContext(ctx))
	assert.Empty(t, TokenFromContext(ctx))

	sess := &Session{ID: "s1", Token: "tok-123"}
	ctx = ContextWithSession(ctx, sess)
	require.NotNil(t, SessionFromContext(ctx))
	assert.Equal(t, "tok-123", TokenFromContext(ctx))
}
