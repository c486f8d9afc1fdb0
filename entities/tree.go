package entities

import "time"

// Tree is a per-species measurement inside a survey. Optional measurements
// are pointers so "not recorded" survives round trips as NULL.
type Tree struct {
	TreeID      uint      `gorm:"primaryKey" json:"tree_id"`
	SurveyID    uint      `gorm:"index;not null" json:"survey_id"`
	SpeciesName string    `gorm:"index;not null" json:"species_name"`
	TreeCount   int       `gorm:"not null" json:"tree_count"`
	HeightAvg   *float64  `json:"height_avg"`   // meters
	DiameterAvg *float64  `json:"diameter_avg"` // centimeters
	AgeAvg      *int      `json:"age_avg"`      // years
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
