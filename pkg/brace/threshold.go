package brace

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

func validateBraceID(braceID string) error {
	if strings.TrimSpace(braceID) == "" {
		return validationError("brace_id can not be empty")
	}
	return nil
}

func (b *Brace) setThreshold(ctx context.Context, input *models.ThresholdInput) (*models.Threshold, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryThreshold),
	)

	if err := validateBraceID(input.BraceID); err != nil {
		return nil, err
	}
	if math.IsNaN(input.UpperAngleThreshold) || math.IsNaN(input.LowerAngleThreshold) {
		return nil, validationError("angle thresholds must be numbers")
	}
	if input.UpperAngleThreshold < input.LowerAngleThreshold {
		return nil, validationError("upper_angle_threshold %.2f is below lower_angle_threshold %.2f",
			input.UpperAngleThreshold, input.LowerAngleThreshold)
	}

	threshold := models.Threshold{
		BraceID:             input.BraceID,
		UpperAngleThreshold: input.UpperAngleThreshold,
		LowerAngleThreshold: input.LowerAngleThreshold,
		Contact:             input.Contact,
		TimeStamp:           time.Now().UTC(),
	}

	logger.Info("Received threshold for brace", zap.Reflect("threshold", threshold))

	// always a new row, the previous bands stay as history
	if err := b.Db.Conn.WithContext(ctx).Create(&threshold).Error; err != nil {
		return nil, wrapPersistence(err)
	}

	logger.Info("Stored threshold for brace", zap.Reflect("threshold", threshold))

	return &threshold, nil
}

// currentThreshold runs on the given handle so ingest can read the band
// inside its own transaction.
func (b *Brace) currentThreshold(tx *gorm.DB, braceID string) (*models.Threshold, error) {
	var threshold models.Threshold
	err := tx.
		Where("brace_id = ?", braceID).
		Order("time_stamp desc").
		Order("id desc").
		Take(&threshold).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return &threshold, nil
}

func (b *Brace) listThresholds(ctx context.Context) ([]models.Threshold, error) {
	var thresholds []models.Threshold
	err := b.Db.Conn.WithContext(ctx).
		Order("time_stamp desc").
		Order("id desc").
		Find(&thresholds).Error
	return thresholds, wrapPersistence(err)
}

type IThresholdImpl struct {
	brace *Brace
}

func (it *IThresholdImpl) SetThreshold(ctx context.Context, input *models.ThresholdInput) (*models.Threshold, error) {
	return it.brace.setThreshold(ctx, input)
}

func (it *IThresholdImpl) CurrentThreshold(ctx context.Context, braceID string) (*models.Threshold, error) {
	if err := validateBraceID(braceID); err != nil {
		return nil, err
	}
	return it.brace.currentThreshold(it.brace.Db.Conn.WithContext(ctx), braceID)
}

func (it *IThresholdImpl) ListThresholds(ctx context.Context) ([]models.Threshold, error) {
	return it.brace.listThresholds(ctx)
}

func (b *Brace) GetIThreshold() IThreshold {
	return &IThresholdImpl{brace: b}
}
