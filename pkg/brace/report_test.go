package brace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
	_ "github.com/Kxngreece/Healstep-API/pkg/testing"
)

func seedRotation(t *testing.T, braceObj *Brace) {
	t.Helper()
	readings := []models.Reading{
		{BraceID: "a", Angle: 10, TimeStamp: time.Date(2025, time.January, 3, 8, 0, 0, 0, time.UTC)},
		{BraceID: "a", Angle: 20, TimeStamp: time.Date(2025, time.January, 3, 18, 0, 0, 0, time.UTC)},
		{BraceID: "b", Angle: 40, TimeStamp: time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC)},
		{BraceID: "a", Angle: 50, TimeStamp: time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC)},
		{BraceID: "a", Angle: 70, TimeStamp: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)},
		{BraceID: "a", Angle: 90, TimeStamp: time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, braceObj.Db.Conn.Create(&readings).Error)
}

func TestWeeklyRotation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	seedRotation(t, braceObj)

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)

	days, err := braceObj.Report.WeeklyRotation(context.Background(), &from, &to)
	require.NoError(t, err)

	assert.Equal(t, []models.DailyRotation{
		{Date: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), AvgAngle: 15, BraceID: "a"},
		{Date: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), AvgAngle: 40, BraceID: "b"},
		{Date: time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC), AvgAngle: 50, BraceID: "a"},
	}, days)
}

func TestWeeklyRotation_Unbounded(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	seedRotation(t, braceObj)

	days, err := braceObj.Report.WeeklyRotation(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, 90.0, days[0].AvgAngle)
}

func TestMonthlyRotation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	seedRotation(t, braceObj)

	months, err := braceObj.Report.MonthlyRotation(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, []models.MonthlyRotation{
		{Month: "January", MonthNumber: 1, AvgAngle: 80.0 / 3, BraceID: "a"},
		{Month: "January", MonthNumber: 1, AvgAngle: 40, BraceID: "b"},
		{Month: "March", MonthNumber: 3, AvgAngle: 70, BraceID: "a"},
	}, months)

	empty, err := braceObj.Report.MonthlyRotation(context.Background(), 2030)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = braceObj.Report.MonthlyRotation(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)
}
