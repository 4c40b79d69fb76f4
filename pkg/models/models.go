package models

import "time"

type AlertType string

const (
	AlertTypeUpperBreach AlertType = "upper-breach"
	AlertTypeLowerBreach AlertType = "lower-breach"
	AlertTypeManual      AlertType = "manual"
)

// Reading is one sensor sample from a brace. Rows are never updated.
type Reading struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BraceID       string    `gorm:"index;not null" json:"brace_id"`
	Angle         float64   `json:"angle"`
	MuscleReading float64   `json:"muscle_reading"`
	TimeStamp     time.Time `gorm:"index" json:"time_stamp"`
}

func (Reading) TableName() string {
	return "knee_brace"
}

// Threshold is one version of a brace's alert band. The current band is the
// row with the latest TimeStamp for the brace.
type Threshold struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	BraceID             string    `gorm:"index;not null" json:"brace_id"`
	UpperAngleThreshold float64   `json:"upper_angle_threshold"`
	LowerAngleThreshold float64   `json:"lower_angle_threshold"`
	Contact             string    `json:"contact"`
	TimeStamp           time.Time `gorm:"index" json:"time_stamp"`
}

func (Threshold) TableName() string {
	return "settings"
}

type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BraceID   string    `gorm:"index;not null" json:"brace_id"`
	Type      AlertType `gorm:"type:varchar(64);not null" json:"type"`
	Message   string    `json:"message"`
	TimeStamp time.Time `json:"time_stamp"`
}

func (Alert) TableName() string {
	return "alerts"
}

type Device struct {
	BraceID     string `gorm:"primaryKey" json:"brace_id"`
	DisplayName string `json:"display_name"`
}

func (Device) TableName() string {
	return "devices"
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"index" json:"email"`
	BraceID   string    `gorm:"index" json:"brace_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BraceID     string    `gorm:"index" json:"brace_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Reason      string    `json:"reason"`
	TimeStamp   time.Time `json:"time_stamp"`
}

func (Appointment) TableName() string {
	return "appointment"
}

type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BraceID   string    `gorm:"index" json:"brace_id"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	TimeStamp time.Time `json:"time_stamp"`
}

func (Feedback) TableName() string {
	return "feedback"
}

func AllModels() []any {
	return []any{
		&Reading{},
		&Threshold{},
		&Alert{},
		&Device{},
		&User{},
		&Appointment{},
		&Feedback{},
	}
}
