package brace

import (
	"context"
	"time"

	"github.com/Kxngreece/Healstep-API/pkg/db"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

//go:generate mockgen -source=brace.go -destination=mocks/mock_brace.go -package=mocks

type IReading interface {
	Ingest(ctx context.Context, input *models.ReadingInput) (*models.IngestResult, error)
	ListReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error)
}

type IThreshold interface {
	SetThreshold(ctx context.Context, input *models.ThresholdInput) (*models.Threshold, error)
	CurrentThreshold(ctx context.Context, braceID string) (*models.Threshold, error)
	ListThresholds(ctx context.Context) ([]models.Threshold, error)
}

type IAlert interface {
	RaiseAlert(ctx context.Context, input *models.AlertInput) (*models.Alert, error)
	CountAlerts(ctx context.Context) (int64, error)
	AlertHistory(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
}

type IDevice interface {
	RegisterDevice(ctx context.Context, braceID string, displayName string) (*models.Device, error)
	ListDevices(ctx context.Context) ([]models.DeviceView, error)
}

type IReport interface {
	WeeklyRotation(ctx context.Context, from, to *time.Time) ([]models.DailyRotation, error)
	MonthlyRotation(ctx context.Context, year int) ([]models.MonthlyRotation, error)
}

type IRecords interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CountAppointments(ctx context.Context) (int64, error)
	CreateFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error)
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
}

// INotifier hands committed records to notification delivery. Calls must not
// block on delivery.
type INotifier interface {
	NotifyAlert(alert models.Alert)
	NotifyFeedback(feedback models.Feedback)
}

type Brace struct {
	Db        *db.DB
	Reading   IReading
	Threshold IThreshold
	Alert     IAlert
	Device    IDevice
	Report    IReport
	Records   IRecords
	Notifier  INotifier
}

type ServiceOpts struct {
	Reading   IReading
	Threshold IThreshold
	Alert     IAlert
	Device    IDevice
	Report    IReport
	Records   IRecords
	Notifier  INotifier
}

func (b *Brace) WithServices(opts ServiceOpts) *Brace {
	if opts.Reading != nil {
		b.Reading = opts.Reading
	}
	if opts.Threshold != nil {
		b.Threshold = opts.Threshold
	}
	if opts.Alert != nil {
		b.Alert = opts.Alert
	}
	if opts.Device != nil {
		b.Device = opts.Device
	}
	if opts.Report != nil {
		b.Report = opts.Report
	}
	if opts.Records != nil {
		b.Records = opts.Records
	}
	if opts.Notifier != nil {
		b.Notifier = opts.Notifier
	}
	return b
}

// New wires every service to its store-backed implementation.
func New(database *db.DB, notifier INotifier) *Brace {
	b := &Brace{Db: database}
	return b.WithServices(ServiceOpts{
		Reading:   b.GetIReading(),
		Threshold: b.GetIThreshold(),
		Alert:     b.GetIAlert(),
		Device:    b.GetIDevice(),
		Report:    b.GetIReport(),
		Records:   b.GetIRecords(),
		Notifier:  notifier,
	})
}
