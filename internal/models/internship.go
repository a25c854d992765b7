package models

import (
	"time"
)

// StipendUnpaid is the default stipend label for listings that omit one.
const StipendUnpaid = "Unpaid"

// Internship represents a publicly browsable listing.
//
// Skills is stored as a JSON-serialized column so that substring filtering
// works identically on PostgreSQL and the SQLite test database. Listings are
// soft-disabled through IsActive and physically removed on admin delete, so
// there is intentionally no DeletedAt column here.
type Internship struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Title               string    `gorm:"not null" json:"title"`
	Company             string    `gorm:"not null" json:"company"`
	Description         string    `gorm:"type:text;not null" json:"description"`
	Skills              []string  `gorm:"serializer:json" json:"skills"`
	Country             string    `gorm:"not null" json:"country"`
	Duration            string    `gorm:"not null" json:"duration"`
	Stipend             string    `gorm:"default:Unpaid" json:"stipend"`
	ApplicationDeadline time.Time `gorm:"not null" json:"applicationDeadline"`
	IsActive            bool      `gorm:"default:true" json:"isActive"`
	CreatedByID         uint      `gorm:"not null;index" json:"createdById"`
	CreatedBy           *User     `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
