package models

import "time"

// DealStatus indicates where a lead stands in its lifecycle.
type DealStatus string

const (
	DealOpen DealStatus = "OPEN"
	DealWon  DealStatus = "WON"
	DealLost DealStatus = "LOST"
)

// Lead maps to the leads table. Nullable references are pointers.
type Lead struct {
	LeadID         string
	OrganizationID string
	Name           string
	AssignedUserID *string
	PropertyID     *string
	PipelineID     *string
	StageID        *string
	DealStatus     DealStatus
	WonAt          *time.Time
	AuditFields
}
