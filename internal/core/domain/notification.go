package domain

import "time"

// Notification is a single in-app notification record. The stakeholder
// notifier batch-inserts these when a deal closes.
type Notification struct {
	NotificationID string     `json:"notificationID"` // Primary Key (UUID)
	OrganizationID string     `json:"organizationID"`
	UserID         string     `json:"userID"` // Recipient
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	LeadID         string     `json:"leadID"` // Nullable link back to the lead
	ReadAt         *time.Time `json:"readAt"`
	AuditFields
}
