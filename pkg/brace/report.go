package brace

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

type rotationKey struct {
	bucket  int64
	braceID string
}

type rotationSum struct {
	total float64
	count int
}

// rotationBuckets averages angles per (bucket, brace). Rows are streamed so the
// grouping does not depend on dialect date functions.
type rotationBuckets struct {
	sums map[rotationKey]*rotationSum
}

func newRotationBuckets() *rotationBuckets {
	return &rotationBuckets{sums: make(map[rotationKey]*rotationSum)}
}

func (rb *rotationBuckets) add(bucket int64, braceID string, angle float64) {
	key := rotationKey{bucket: bucket, braceID: braceID}
	sum, ok := rb.sums[key]
	if !ok {
		sum = &rotationSum{}
		rb.sums[key] = sum
	}
	sum.total += angle
	sum.count++
}

func (rb *rotationBuckets) sortedKeys() []rotationKey {
	keys := make([]rotationKey, 0, len(rb.sums))
	for key := range rb.sums {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].bucket != keys[j].bucket {
			return keys[i].bucket < keys[j].bucket
		}
		return keys[i].braceID < keys[j].braceID
	})
	return keys
}

func (rb *rotationBuckets) average(key rotationKey) float64 {
	sum := rb.sums[key]
	return sum.total / float64(sum.count)
}

func (b *Brace) scanRotation(ctx context.Context, filter models.ReadingFilter, bucketOf func(time.Time) int64) (*rotationBuckets, error) {
	query := b.Db.Conn.WithContext(ctx).
		Model(&models.Reading{}).
		Select("brace_id", "angle", "time_stamp")
	query = applyReadingFilter(query, filter)

	rows, err := query.Rows()
	if err != nil {
		return nil, wrapPersistence(err)
	}
	defer rows.Close()

	buckets := newRotationBuckets()
	for rows.Next() {
		var reading models.Reading
		if err := b.Db.Conn.ScanRows(rows, &reading); err != nil {
			return nil, wrapPersistence(err)
		}
		buckets.add(bucketOf(reading.TimeStamp.UTC()), reading.BraceID, reading.Angle)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPersistence(err)
	}
	return buckets, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (b *Brace) weeklyRotation(ctx context.Context, from, to *time.Time) ([]models.DailyRotation, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReport),
	)

	buckets, err := b.scanRotation(ctx, models.ReadingFilter{From: from, To: to}, func(t time.Time) int64 {
		return truncateDay(t).Unix()
	})
	if err != nil {
		logger.Error("Weekly rotation failed", zap.Error(err))
		return nil, err
	}

	keys := buckets.sortedKeys()
	result := make([]models.DailyRotation, 0, len(keys))
	for _, key := range keys {
		result = append(result, models.DailyRotation{
			Date:     time.Unix(key.bucket, 0).UTC(),
			AvgAngle: buckets.average(key),
			BraceID:  key.braceID,
		})
	}
	return result, nil
}

func (b *Brace) monthlyRotation(ctx context.Context, year int) ([]models.MonthlyRotation, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameBraceCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReport),
	)

	if year < 1 || year > 9999 {
		return nil, validationError("year %d out of range", year)
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	buckets, err := b.scanRotation(ctx, models.ReadingFilter{From: &from, To: &to}, func(t time.Time) int64 {
		return int64(t.Month())
	})
	if err != nil {
		logger.Error("Monthly rotation failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	keys := buckets.sortedKeys()
	result := make([]models.MonthlyRotation, 0, len(keys))
	for _, key := range keys {
		month := time.Month(key.bucket)
		result = append(result, models.MonthlyRotation{
			Month:       month.String(),
			MonthNumber: int(month),
			AvgAngle:    buckets.average(key),
			BraceID:     key.braceID,
		})
	}
	return result, nil
}

type IReportImpl struct {
	brace *Brace
}

func (ir *IReportImpl) WeeklyRotation(ctx context.Context, from, to *time.Time) ([]models.DailyRotation, error) {
	return ir.brace.weeklyRotation(ctx, from, to)
}

func (ir *IReportImpl) MonthlyRotation(ctx context.Context, year int) ([]models.MonthlyRotation, error) {
	return ir.brace.monthlyRotation(ctx, year)
}

func (b *Brace) GetIReport() IReport {
	return &IReportImpl{brace: b}
}
