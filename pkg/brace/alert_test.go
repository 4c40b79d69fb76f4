package brace

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
	_ "github.com/Kxngreece/Healstep-API/pkg/testing"
)

func TestRaiseAlert_Manual(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, m := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	var notified models.Alert
	m.Notifier.
		EXPECT().
		NotifyAlert(gomock.Any()).
		Do(func(alert models.Alert) { notified = alert }).
		Times(1)

	alert, err := braceObj.Alert.RaiseAlert(context.Background(), &models.AlertInput{
		BraceID: "brace-3",
		Type:    models.AlertTypeManual,
		Message: "check strap",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, braceObj, &models.Alert{}, "brace-3"))
	assert.Equal(t, alert.ID, notified.ID)
	assert.Equal(t, "brace-3", notified.BraceID)
	assert.Equal(t, models.AlertTypeManual, notified.Type)
	assert.Equal(t, "check strap", notified.Message)

	// no threshold exists for the brace and none was consulted
	_, err = braceObj.Threshold.CurrentThreshold(context.Background(), "brace-3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRaiseAlert_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, m := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	m.Notifier.EXPECT().NotifyAlert(gomock.Any()).Times(0)

	inputs := []models.AlertInput{
		{Type: models.AlertTypeManual, Message: "m"},
		{BraceID: "b", Message: "m"},
		{BraceID: "b", Type: models.AlertTypeManual, Message: "  "},
	}
	for _, input := range inputs {
		_, err := braceObj.Alert.RaiseAlert(context.Background(), &input)
		assert.ErrorIs(t, err, ErrValidation)
	}

	count, err := braceObj.Alert.CountAlerts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRaiseAlert_StoreFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, m := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	m.Notifier.EXPECT().NotifyAlert(gomock.Any()).Times(0)

	require.NoError(t, braceObj.Db.Conn.Migrator().DropTable(&models.Alert{}))

	_, err := braceObj.Alert.RaiseAlert(context.Background(), &models.AlertInput{
		BraceID: "b", Type: models.AlertTypeManual, Message: "m",
	})
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestAlertHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, m := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	m.Notifier.EXPECT().NotifyAlert(gomock.Any()).Times(3)

	ctx := context.Background()
	first := uuid.NewString()
	second := uuid.NewString()

	for _, input := range []models.AlertInput{
		{BraceID: first, Type: models.AlertTypeManual, Message: "one"},
		{BraceID: second, Type: models.AlertTypeManual, Message: "two"},
		{BraceID: first, Type: models.AlertTypeManual, Message: "three"},
	} {
		_, err := braceObj.Alert.RaiseAlert(ctx, &input)
		require.NoError(t, err)
	}

	all, err := braceObj.Alert.AlertHistory(ctx, models.AlertFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"one", "two", "three"}, common.Mapper(all, func(a models.Alert) string { return a.Message }))

	filtered, err := braceObj.Alert.AlertHistory(ctx, models.AlertFilter{BraceID: first})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	count, err := braceObj.Alert.CountAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAlertHistory_Empty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	alerts, err := braceObj.Alert.AlertHistory(context.Background(), models.AlertFilter{})
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestRaiseAlert_WithoutNotifier(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)
	defer common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	braceObj.Notifier = nil

	alert, err := braceObj.Alert.RaiseAlert(context.Background(), &models.AlertInput{
		BraceID: "b", Type: models.AlertTypeManual, Message: "m",
	})
	require.NoError(t, err)

	logs := ParseLogs(buf)
	assert.True(t, findLog(logs, func(lobj map[string]any) bool {
		return lobj["msg"] == "Notifier not available, alert not delivered" &&
			lobj["alert_id"] == float64(alert.ID)
	}))
}
