package domain

// OrganizationRole defines a user's role within an organization. Every piece
// of data in this system is scoped to one organization; membership itself is
// resolved straight from the organization_users rows, so the role is the only
// organization concept the services reason about.
type OrganizationRole string

const (
	RoleAdmin    OrganizationRole = "ADMIN"
	RoleMember   OrganizationRole = "MEMBER"
	RoleReadOnly OrganizationRole = "READONLY"
)
