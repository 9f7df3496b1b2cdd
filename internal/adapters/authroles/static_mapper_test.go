package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	t.Parallel()

	m := StaticRoleMapper{
		AdminGroup: "hrms-admins",
		OwnerGroup: "hrms-owners",
		HRGroup:    "hrms-hr",
		EAGroup:    "hrms-ea",
	}

	tests := []struct {
		name    string
		groups  []string
		want    domainauth.Role
		matched bool
	}{
		{"admin", []string{"hrms-admins"}, domainauth.RoleAdmin, true},
		{"owner", []string{"hrms-owners"}, domainauth.RoleOwner, true},
		{"hr", []string{"misc", "hrms-hr"}, domainauth.RoleHR, true},
		{"ea", []string{"hrms-ea"}, domainauth.RoleEA, true},
		{"admin wins over hr", []string{"hrms-hr", "hrms-admins"}, domainauth.RoleAdmin, true},
		{"no match", []string{"unrelated"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := m.Map(tt.groups)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestStaticRoleMapperIgnoresUnconfiguredGroups(t *testing.T) {
	t.Parallel()

	m := StaticRoleMapper{HRGroup: "hrms-hr"}
	role, ok := m.Map([]string{"", "hrms-hr"})
	assert.True(t, ok)
	assert.Equal(t, domainauth.RoleHR, role)

	_, ok = StaticRoleMapper{}.Map([]string{"anything"})
	assert.False(t, ok)
}
