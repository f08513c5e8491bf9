package domain

// ProjectStatus drives the realized-vs-potential profit split at aggregation
// time; changing it never touches journal history.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// Project groups journal entries for per-project profit and loss reporting.
type Project struct {
	ProjectID string        `json:"projectID"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	AuditFields
}
