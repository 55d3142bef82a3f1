package domain

// User represents a person referenced by leads, contracts and notifications:
// a representative, a broker or an administrator.
type User struct {
	UserID     string `json:"userID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsTeamLead bool   `json:"isTeamLead"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
