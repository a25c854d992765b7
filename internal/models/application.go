package models

import (
	"time"
)

// Application statuses. The entity stores five values; the status-update
// endpoint accepts only a four-value subset without "interview".
const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusInterview = "interview"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
)

// Application links one student to one internship.
//
// StudentName and StudentEmail are snapshots captured at submission time and
// are never synced with later identity changes. The compound unique index on
// (internship_id, student_id) is the actual duplicate-submission guarantee;
// the service-level pre-check only exists for a friendlier error path.
// Applications are never soft-deleted and survive internship deletion.
type Application struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	InternshipID uint        `gorm:"not null;uniqueIndex:idx_internship_student" json:"internshipId"`
	Internship   *Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
	StudentID    uint        `gorm:"not null;uniqueIndex:idx_internship_student" json:"studentId"`
	Student      *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	StudentName  string      `gorm:"not null" json:"studentName"`
	StudentEmail string      `gorm:"not null" json:"studentEmail"`
	CoverLetter  string      `gorm:"type:text;not null" json:"coverLetter"`
	Resume       string      `json:"resume"`
	Status       string      `gorm:"not null;default:pending" json:"status"`
	AppliedAt    time.Time   `gorm:"autoCreateTime" json:"appliedAt"`
}
