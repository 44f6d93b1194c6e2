package models

// Application status values as written by the marketplace CRUD service.
const (
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusPending  = "Pending"
	ApplicationStatusRejected = "Rejected"
)

// Job is the read-only job projection used for room authorization.
type Job struct {
	JobID    int64  `db:"job_id" json:"job_id"`
	ClientID int64  `db:"client_id" json:"client_id"`
	Status   string `db:"status" json:"status"`
}

// JobApplication is a professional's application on a job.
type JobApplication struct {
	ID             int64  `db:"id" json:"id"`
	JobID          int64  `db:"job_id" json:"job_id"`
	ProfessionalID int64  `db:"professional_id" json:"professional_id"`
	Status         string `db:"status" json:"status"`
}
