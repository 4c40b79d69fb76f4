package models

import "time"

type ReadingInput struct {
	BraceID       string
	Angle         float64
	MuscleReading float64
}

// IngestResult is what one committed ingest produced. Alert is nil when the
// reading stayed inside the band or the brace has no threshold.
type IngestResult struct {
	Reading Reading `json:"reading"`
	Alert   *Alert  `json:"alert,omitempty"`
}

type ReadingFilter struct {
	BraceID string
	From    *time.Time
	To      *time.Time
}

type ThresholdInput struct {
	BraceID             string
	UpperAngleThreshold float64
	LowerAngleThreshold float64
	Contact             string
}

type AlertInput struct {
	BraceID string
	Type    AlertType
	Message string
}

type AlertFilter struct {
	BraceID string
}

type DeviceView struct {
	BraceID     string  `json:"brace_id"`
	DisplayName *string `json:"display_name"`
}

type DailyRotation struct {
	Date     time.Time `json:"date"`
	AvgAngle float64   `json:"avgangle"`
	BraceID  string    `json:"brace_id"`
}

type MonthlyRotation struct {
	Month       string  `json:"month"`
	MonthNumber int     `json:"month_number"`
	AvgAngle    float64 `json:"avgangle"`
	BraceID     string  `json:"brace_id"`
}
