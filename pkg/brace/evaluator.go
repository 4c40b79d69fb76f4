package brace

import (
	"fmt"

	"github.com/Kxngreece/Healstep-API/pkg/models"
)

// Decision is the outcome of checking one reading against a band. The zero
// value means no alert.
type Decision struct {
	Triggered bool
	Type      models.AlertType
	Message   string
}

// Evaluate compares the reading angle to the band. It keeps no state between
// readings: every breaching reading triggers, even if the previous one did.
// A nil threshold never triggers.
func Evaluate(reading *models.Reading, threshold *models.Threshold) Decision {
	if reading == nil || threshold == nil {
		return Decision{}
	}

	switch {
	case reading.Angle > threshold.UpperAngleThreshold:
		return Decision{
			Triggered: true,
			Type:      models.AlertTypeUpperBreach,
			Message: fmt.Sprintf("Brace %s angle %.2f exceeded upper threshold %.2f",
				reading.BraceID, reading.Angle, threshold.UpperAngleThreshold),
		}
	case reading.Angle < threshold.LowerAngleThreshold:
		return Decision{
			Triggered: true,
			Type:      models.AlertTypeLowerBreach,
			Message: fmt.Sprintf("Brace %s angle %.2f fell below lower threshold %.2f",
				reading.BraceID, reading.Angle, threshold.LowerAngleThreshold),
		}
	default:
		return Decision{}
	}
}
