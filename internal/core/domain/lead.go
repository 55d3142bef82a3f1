package domain

import "time"

// DealStatus indicates where a lead stands in its lifecycle.
type DealStatus string

const (
	DealOpen DealStatus = "OPEN"
	DealWon  DealStatus = "WON"
	DealLost DealStatus = "LOST"
)

// Lead represents a sales prospect tracked through pipeline stages.
// The closure workflow only ever mutates DealStatus and WonAt; leads are
// never deleted here.
type Lead struct {
	LeadID         string     `json:"leadID"`         // Primary Key (UUID)
	OrganizationID string     `json:"organizationID"` // FK -> organizations (NON-NULL)
	Name           string     `json:"name"`
	AssignedUserID string     `json:"assignedUserID"` // Nullable; owning representative
	PropertyID     string     `json:"propertyID"`     // Nullable; associated listing
	PipelineID     string     `json:"pipelineID"`     // Nullable
	StageID        string     `json:"stageID"`        // Nullable
	DealStatus     DealStatus `json:"dealStatus"`
	WonAt          *time.Time `json:"wonAt"` // Set once when the deal closes
	AuditFields
}
