package services

import (
	"strings"

	"hotelpms/errors"
	"hotelpms/models"

	"gorm.io/gorm"
)

// Identity is what the caller knows about a user before a role is assigned:
// whatever role claim the auth token carried, plus the asserted email.
type Identity struct {
	TokenRole    int
	HasTokenRole bool
	Email        string
}

// RoleResolver tries one strategy to map an identity to a role.
type RoleResolver interface {
	Resolve(id Identity) (int, bool)
}

// claimsResolver trusts the role claim embedded in the auth token metadata.
type claimsResolver struct{}

func (claimsResolver) Resolve(id Identity) (int, bool) {
	if id.HasTokenRole && id.TokenRole > 0 {
		return id.TokenRole, true
	}
	return 0, false
}

// StaffLookup resolves an email to the role stored on the staff row.
type StaffLookup func(email string) (int, bool)

// GormStaffLookup is the production lookup against the staff table.
func GormStaffLookup(db *gorm.DB) StaffLookup {
	return func(email string) (int, bool) {
		var staff models.Staff
		if err := db.Select("role").Where("email = ?", email).First(&staff).Error; err != nil {
			return 0, false
		}
		return staff.Role, true
	}
}

type staffTableResolver struct {
	lookup StaffLookup
}

func (r staffTableResolver) Resolve(id Identity) (int, bool) {
	if id.Email == "" || r.lookup == nil {
		return 0, false
	}
	return r.lookup(id.Email)
}

// allowlistResolver grants super-admin to a static set of emails.
type allowlistResolver struct {
	emails map[string]struct{}
	role   int
}

func (r allowlistResolver) Resolve(id Identity) (int, bool) {
	if id.Email == "" {
		return 0, false
	}
	_, ok := r.emails[strings.ToLower(id.Email)]
	if !ok {
		return 0, false
	}
	return r.role, true
}

// RoleResolution resolves a role by trying its resolvers in order; the first
// hit wins. There is no ambient role state: callers pass the identity in and
// get a role out.
type RoleResolution struct {
	resolvers []RoleResolver
}

// NewRoleResolution builds the production resolver chain: token claims, then
// the staff table, then the super-admin allowlist.
func NewRoleResolution(lookup StaffLookup, allowlist []string, allowlistRole int) *RoleResolution {
	emails := make(map[string]struct{}, len(allowlist))
	for _, e := range allowlist {
		emails[strings.ToLower(e)] = struct{}{}
	}
	return &RoleResolution{
		resolvers: []RoleResolver{
			claimsResolver{},
			staffTableResolver{lookup: lookup},
			allowlistResolver{emails: emails, role: allowlistRole},
		},
	}
}

// ResolveRole walks the resolver chain.
func (r *RoleResolution) ResolveRole(id Identity) (int, error) {
	for _, resolver := range r.resolvers {
		if role, ok := resolver.Resolve(id); ok {
			return role, nil
		}
	}
	return 0, errors.NewAppError(errors.ErrCodeInvalidRole, "no role could be resolved for this identity", nil)
}
