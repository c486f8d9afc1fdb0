package entities

import "time"

// FarmSurvey is one farmer/crop/location observation record. LastUpdated is
// the conflict-detection anchor: it is bumped on every successful mutation
// and compared against the client-held timestamp on update.
type FarmSurvey struct {
	SurveyID    uint      `gorm:"primaryKey" json:"survey_id"`
	FarmerName  string    `gorm:"index;not null" json:"farmer_name"`
	CropType    string    `gorm:"not null" json:"crop_type"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	SyncStatus  bool      `gorm:"not null;default:false" json:"sync_status"`
	LastUpdated time.Time `gorm:"not null" json:"last_updated"`

	// Declared from the owning side so AutoMigrate puts the foreign key on
	// trees.survey_id. Never preloaded; views assemble trees explicitly.
	Trees []Tree `gorm:"foreignKey:SurveyID;references:SurveyID;constraint:OnDelete:CASCADE" json:"-"`
}
