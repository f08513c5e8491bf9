package models

// Project is the database representation of a project.
type Project struct {
	ProjectID string `db:"project_id"`
	Name      string `db:"name"`
	Status    string `db:"status"`
	AuditFields
}
