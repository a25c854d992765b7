package models

import (
	"time"
)

// EducationEntry is one schooling record on a profile. Current suppresses the
// end date in the client.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Current   bool   `json:"current"`
}

// ExperienceEntry is one work record on a profile.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

// ProjectEntry is one project record on a profile.
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Profile is the single per-user profile document. The list-valued fields are
// JSON-serialized columns; order within each list is preserved verbatim.
type Profile struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	UserID     uint              `gorm:"uniqueIndex;not null" json:"userId"`
	User       *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bio        string            `gorm:"size:500" json:"bio"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Education  []EducationEntry  `gorm:"serializer:json" json:"education"`
	Experience []ExperienceEntry `gorm:"serializer:json" json:"experience"`
	Skills     []string          `gorm:"serializer:json" json:"skills"`
	Projects   []ProjectEntry    `gorm:"serializer:json" json:"projects"`
	Resume     string            `json:"resume"`
	Portfolio  string            `json:"portfolio"`
	Linkedin   string            `json:"linkedin"`
	Github     string            `json:"github"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
