package domain

import "time"

// AuditAction represents the type of mutation recorded in a sample audit record.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// SampleAudit is one entry of a sample's change history. AuditNumber starts
// at 1 for each sample and increases with every recorded mutation.
type SampleAudit struct {
	AuditID     int64
	SampleID    string
	AuditNumber int
	Action      AuditAction
	Snapshot    Sample
	CreatedAt   time.Time
}
