package service

import (
	"errors"
	"time"

	treeSvc "farmsurvey/pkg/tree/service"
)

var (
	ErrNotFound = errors.New("survey not found")
	// ErrConflict means the client-held last_updated timestamp diverged
	// from the stored one beyond the configured tolerance.
	ErrConflict = errors.New("conflict: survey was modified since last read, fetch the latest version and retry")
)

type SurveyService interface {
	Create(in SurveyCreate) (*SurveyView, error)
	Get(id uint) (*SurveyView, error)
	List(skip, limit int) ([]SurveyView, error)
	// UpdatePartial applies the patch under the conflict protocol. A nil
	// expected timestamp skips conflict detection entirely.
	UpdatePartial(id uint, patch SurveyPatch, expected *time.Time) (*SurveyView, error)
	Delete(id uint) error
}

// GeoLocation uses pointer coordinates so a payload that omits latitude or
// longitude fails validation instead of silently reading as 0,0.
type GeoLocation struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type SurveyCreate struct {
	FarmerName  string       `json:"farmer_name" validate:"required"`
	CropType    string       `json:"crop_type" validate:"required"`
	GeoLocation *GeoLocation `json:"geo_location" validate:"required"`
	SyncStatus  bool         `json:"sync_status"`
}

// SurveyPatch carries only the fields present in the request body; nil means
// "leave unchanged". An explicit sync_status=false is a real overwrite.
type SurveyPatch struct {
	FarmerName  *string      `json:"farmer_name" validate:"omitempty,min=1"`
	CropType    *string      `json:"crop_type" validate:"omitempty,min=1"`
	GeoLocation *GeoLocation `json:"geo_location"`
	SyncStatus  *bool        `json:"sync_status"`
}

type SurveyView struct {
	SurveyID    uint               `json:"survey_id"`
	FarmerName  string             `json:"farmer_name"`
	CropType    string             `json:"crop_type"`
	GeoLocation GeoLocation        `json:"geo_location"`
	SyncStatus  bool               `json:"sync_status"`
	LastUpdated time.Time          `json:"last_updated"`
	Trees       []treeSvc.TreeView `json:"trees"`
}
