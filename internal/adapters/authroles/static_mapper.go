package authroles

import (
	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// StaticRoleMapper maps directory groups to application roles by simple
// string membership. More privileged groups win when a user is in
// several.
type StaticRoleMapper struct {
	AdminGroup string
	OwnerGroup string
	HRGroup    string
	EAGroup    string
}

var _ ports.RoleMapper = StaticRoleMapper{}

// Map returns the mapped role and whether any configured group matched.
func (m StaticRoleMapper) Map(groups []string) (domainauth.Role, bool) {
	ordered := []struct {
		group string
		role  domainauth.Role
	}{
		{m.AdminGroup, domainauth.RoleAdmin},
		{m.OwnerGroup, domainauth.RoleOwner},
		{m.HRGroup, domainauth.RoleHR},
		{m.EAGroup, domainauth.RoleEA},
	}
	for _, o := range ordered {
		if o.group == "" {
			continue
		}
		for _, g := range groups {
			if g == o.group {
				return o.role, true
			}
		}
	}
	return "", false
}
