package brace

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

// ingest stores the reading and, when it breaches the brace's current band,
// its alert in one transaction. Notification is dispatched only after commit.
func (b *Brace) ingest(ctx context.Context, input *models.ReadingInput) (*models.IngestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	if err := validateBraceID(input.BraceID); err != nil {
		return nil, err
	}

	reading := models.Reading{
		BraceID:       input.BraceID,
		Angle:         input.Angle,
		MuscleReading: input.MuscleReading,
		TimeStamp:     time.Now().UTC(),
	}

	logger.Info("Received reading for brace", zap.Reflect("reading", reading))

	var alert *models.Alert
	err := b.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reading).Error; err != nil {
			return err
		}

		threshold, err := b.currentThreshold(tx, reading.BraceID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		decision := Evaluate(&reading, threshold)
		if !decision.Triggered {
			return nil
		}

		alert, err = b.record(tx, reading.BraceID, decision.Type, decision.Message)
		return err
	})
	if err != nil {
		logger.Error("Reading rolled back", zap.String("brace_id", reading.BraceID), zap.Error(err))
		return nil, wrapPersistence(err)
	}

	logger.Info("Stored reading for brace", zap.Reflect("reading", reading), zap.Bool("alert", alert != nil))

	if alert != nil {
		b.notifyAlert(*alert)
	}

	return &models.IngestResult{Reading: reading, Alert: alert}, nil
}

func (b *Brace) listReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error) {
	query := b.Db.Conn.WithContext(ctx).Order("time_stamp asc").Order("id asc")
	query = applyReadingFilter(query, filter)

	var readings []models.Reading
	err := query.Find(&readings).Error
	return readings, wrapPersistence(err)
}

func applyReadingFilter(query *gorm.DB, filter models.ReadingFilter) *gorm.DB {
	if filter.BraceID != "" {
		query = query.Where("brace_id = ?", filter.BraceID)
	}
	if filter.From != nil {
		query = query.Where("time_stamp >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("time_stamp < ?", filter.To.UTC())
	}
	return query
}

type IReadingImpl struct {
	brace *Brace
}

func (ir *IReadingImpl) Ingest(ctx context.Context, input *models.ReadingInput) (*models.IngestResult, error) {
	return ir.brace.ingest(ctx, input)
}

func (ir *IReadingImpl) ListReadings(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error) {
	return ir.brace.listReadings(ctx, filter)
}

func (b *Brace) GetIReading() IReading {
	return &IReadingImpl{brace: b}
}
