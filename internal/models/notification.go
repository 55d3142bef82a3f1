package models

import "time"

// Notification maps to the notifications table.
type Notification struct {
	NotificationID string
	OrganizationID string
	UserID         string
	Title          string
	Message        string
	LeadID         *string
	ReadAt         *time.Time
	AuditFields
}
