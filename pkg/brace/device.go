package brace

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

func (b *Brace) registerDevice(ctx context.Context, braceID string, displayName string) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	if err := validateBraceID(braceID); err != nil {
		return nil, err
	}

	device := models.Device{BraceID: braceID, DisplayName: displayName}
	err := b.Db.Conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "brace_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name"}),
		}).
		Create(&device).Error
	if err != nil {
		return nil, wrapPersistence(err)
	}

	logger.Info("Device registered", zap.Reflect("device", device))

	return &device, nil
}

// listDevices returns every brace that has sent a reading, with its display
// name when one was registered.
func (b *Brace) listDevices(ctx context.Context) ([]models.DeviceView, error) {
	var devices []models.DeviceView
	err := b.Db.Conn.WithContext(ctx).
		Table("knee_brace").
		Distinct("knee_brace.brace_id", "devices.display_name").
		Joins("LEFT JOIN devices ON devices.brace_id = knee_brace.brace_id").
		Order("knee_brace.brace_id asc").
		Scan(&devices).Error
	return devices, wrapPersistence(err)
}

type IDeviceImpl struct {
	brace *Brace
}

func (id *IDeviceImpl) RegisterDevice(ctx context.Context, braceID string, displayName string) (*models.Device, error) {
	return id.brace.registerDevice(ctx, braceID, displayName)
}

func (id *IDeviceImpl) ListDevices(ctx context.Context) ([]models.DeviceView, error) {
	return id.brace.listDevices(ctx)
}

func (b *Brace) GetIDevice() IDevice {
	return &IDeviceImpl{brace: b}
}
