package brace

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

func alertLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)
}

// record appends one alert on the caller's transaction.
func (b *Brace) record(tx *gorm.DB, braceID string, alertType models.AlertType, message string) (*models.Alert, error) {
	logger := alertLogger()

	alert := models.Alert{
		BraceID:   braceID,
		Type:      alertType,
		Message:   message,
		TimeStamp: time.Now().UTC(),
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := tx.Create(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	return &alert, nil
}

func (b *Brace) raiseAlert(ctx context.Context, input *models.AlertInput) (*models.Alert, error) {
	if err := validateBraceID(input.BraceID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(input.Type)) == "" {
		return nil, validationError("type can not be empty")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, validationError("message can not be empty")
	}

	var alert *models.Alert
	err := b.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		alert, err = b.record(tx, input.BraceID, input.Type, input.Message)
		return err
	})
	if err != nil {
		alertLogger().Error("Alert not saved", zap.String("brace_id", input.BraceID), zap.Error(err))
		return nil, wrapPersistence(err)
	}

	b.notifyAlert(*alert)

	return alert, nil
}

// notifyAlert runs after commit. Delivery problems belong to the notifier and
// never reach the caller.
func (b *Brace) notifyAlert(alert models.Alert) {
	if b.Notifier == nil {
		alertLogger().Warn("Notifier not available, alert not delivered", zap.Uint("alert_id", alert.ID))
		return
	}
	b.Notifier.NotifyAlert(alert)
}

func (b *Brace) countAlerts(ctx context.Context) (int64, error) {
	var count int64
	err := b.Db.Conn.WithContext(ctx).Model(&models.Alert{}).Count(&count).Error
	return count, wrapPersistence(err)
}

func (b *Brace) alertHistory(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	query := b.Db.Conn.WithContext(ctx).Order("id asc")
	if filter.BraceID != "" {
		query = query.Where("brace_id = ?", filter.BraceID)
	}

	var alerts []models.Alert
	err := query.Find(&alerts).Error
	return alerts, wrapPersistence(err)
}

type IAlertImpl struct {
	brace *Brace
}

func (ia *IAlertImpl) RaiseAlert(ctx context.Context, input *models.AlertInput) (*models.Alert, error) {
	return ia.brace.raiseAlert(ctx, input)
}

func (ia *IAlertImpl) CountAlerts(ctx context.Context) (int64, error) {
	return ia.brace.countAlerts(ctx)
}

func (ia *IAlertImpl) AlertHistory(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	return ia.brace.alertHistory(ctx, filter)
}

func (b *Brace) GetIAlert() IAlert {
	return &IAlertImpl{brace: b}
}
