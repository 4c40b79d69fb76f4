package brace

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

func recordsLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRecords),
	)
}

func (b *Brace) createUser(ctx context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		return nil, validationError("name can not be empty")
	}

	created := *user
	created.ID = 0
	created.CreatedAt = time.Now().UTC()
	if err := b.Db.Conn.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, wrapPersistence(err)
	}

	recordsLogger().Info("User created", zap.Uint("user_id", created.ID))

	return &created, nil
}

func (b *Brace) listUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := b.Db.Conn.WithContext(ctx).Order("id asc").Find(&users).Error
	return users, wrapPersistence(err)
}

func (b *Brace) getUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := b.Db.Conn.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return &user, nil
}

func (b *Brace) createAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if err := validateBraceID(appointment.BraceID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(appointment.Name) == "" {
		return nil, validationError("name can not be empty")
	}

	created := *appointment
	created.ID = 0
	created.TimeStamp = time.Now().UTC()
	if err := b.Db.Conn.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, wrapPersistence(err)
	}

	recordsLogger().Info("Appointment created", zap.Uint("appointment_id", created.ID), zap.String("brace_id", created.BraceID))

	return &created, nil
}

func (b *Brace) listAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := b.Db.Conn.WithContext(ctx).Order("id asc").Find(&appointments).Error
	return appointments, wrapPersistence(err)
}

func (b *Brace) countAppointments(ctx context.Context) (int64, error) {
	var count int64
	err := b.Db.Conn.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, wrapPersistence(err)
}

func (b *Brace) createFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	if err := validateBraceID(feedback.BraceID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(feedback.Body) == "" {
		return nil, validationError("body can not be empty")
	}

	created := *feedback
	created.ID = 0
	created.TimeStamp = time.Now().UTC()
	if err := b.Db.Conn.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, wrapPersistence(err)
	}

	recordsLogger().Info("Feedback created", zap.Uint("feedback_id", created.ID), zap.String("brace_id", created.BraceID))

	if b.Notifier != nil {
		b.Notifier.NotifyFeedback(created)
	}

	return &created, nil
}

func (b *Brace) listFeedback(ctx context.Context) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := b.Db.Conn.WithContext(ctx).Order("id asc").Find(&feedback).Error
	return feedback, wrapPersistence(err)
}

type IRecordsImpl struct {
	brace *Brace
}

func (ir *IRecordsImpl) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	return ir.brace.createUser(ctx, user)
}

func (ir *IRecordsImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	return ir.brace.listUsers(ctx)
}

func (ir *IRecordsImpl) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return ir.brace.getUser(ctx, id)
}

func (ir *IRecordsImpl) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return ir.brace.createAppointment(ctx, appointment)
}

func (ir *IRecordsImpl) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return ir.brace.listAppointments(ctx)
}

func (ir *IRecordsImpl) CountAppointments(ctx context.Context) (int64, error) {
	return ir.brace.countAppointments(ctx)
}

func (ir *IRecordsImpl) CreateFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	return ir.brace.createFeedback(ctx, feedback)
}

func (ir *IRecordsImpl) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	return ir.brace.listFeedback(ctx)
}

func (b *Brace) GetIRecords() IRecords {
	return &IRecordsImpl{brace: b}
}
