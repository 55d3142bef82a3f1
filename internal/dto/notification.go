package dto

// DealWonNotification is the input to the stakeholder notifier. It carries
// everything the notifier needs so it never has to re-read the lead.
type DealWonNotification struct {
	LeadID         string
	LeadName       string
	OrganizationID string
	PipelineID     string // Optional; enables the team-lead tier
	AssignedUserID string // Optional; enables the assignee tier
	Source         string // Originating workflow, e.g. "deal_closure"
}
