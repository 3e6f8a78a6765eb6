package verification

import (
	"time"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// Checklist is the officer's attestation that every item was reviewed before
// approval. It gates the APPROVE action and is never persisted.
type Checklist struct {
	Registration  bool `json:"registration"`
	Address       bool `json:"address"`
	Accreditation bool `json:"accreditation"`
	Courses       bool `json:"courses"`
	Contact       bool `json:"contact"`
}

// Complete reports whether every item was affirmed.
func (c Checklist) Complete() bool {
	return c.Registration && c.Address && c.Accreditation && c.Courses && c.Contact
}

// ActInput carries an officer decision against a college record.
type ActInput struct {
	CollegeID uuid.UUID
	Action    enums.VerificationAction
	Remarks   string
	Checklist Checklist
}

// QueueFilters narrows the approved-college queue.
type QueueFilters struct {
	Country  string
	State    string
	District string
	Type     string
	Search   string
}

// QueueItem is one row of an officer queue, annotated with the effective
// approval status derived at read time.
type QueueItem struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Code           string               `json:"code"`
	CollegeType    enums.CollegeType    `json:"college_type"`
	Country        string               `json:"country"`
	State          string               `json:"state"`
	District       string               `json:"district"`
	Status         enums.CollegeStatus  `json:"status"`
	ApprovalStatus enums.ApprovalStatus `json:"approval_status"`
	ApprovedAt     *time.Time           `json:"approved_at,omitempty"`
	ValidUntil     *time.Time           `json:"valid_until,omitempty"`
	SubmittedAt    *time.Time           `json:"submitted_at,omitempty"`
	Remarks        *string              `json:"remarks,omitempty"`
}

// LogEntry is one audit trail row with the officer display name joined in.
type LogEntry struct {
	ID          uuid.UUID                `json:"id"`
	Action      enums.VerificationAction `json:"action"`
	Remarks     string                   `json:"remarks"`
	OfficerName string                   `json:"officer_name"`
	CreatedAt   time.Time                `json:"created_at"`
}

// CollegeDetails is the full record an officer reviews: the college row, all
// detail rows, and the audit trail.
type CollegeDetails struct {
	College        *models.College      `json:"college"`
	ApprovalStatus enums.ApprovalStatus `json:"approval_status"`
	Logs           []LogEntry           `json:"logs"`
}

func toQueueItem(college models.College, effective enums.ApprovalStatus) QueueItem {
	return QueueItem{
		ID:             college.ID,
		Name:           college.Name,
		Code:           college.Code,
		CollegeType:    college.CollegeType,
		Country:        college.Country,
		State:          college.State,
		District:       college.District,
		Status:         college.Status,
		ApprovalStatus: effective,
		ApprovedAt:     college.ApprovedAt,
		ValidUntil:     college.ValidUntil,
		SubmittedAt:    college.SubmittedAt,
		Remarks:        college.Remarks,
	}
}

func toLogEntries(rows []models.VerificationLog) []LogEntry {
	entries := make([]LogEntry, len(rows))
	for i, row := range rows {
		name := ""
		if row.Officer != nil {
			name = row.Officer.Name
		}
		entries[i] = LogEntry{
			ID:          row.ID,
			Action:      row.Action,
			Remarks:     row.Remarks,
			OfficerName: name,
			CreatedAt:   row.CreatedAt,
		}
	}
	return entries
}
