package brace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/models"
	_ "github.com/Kxngreece/Healstep-API/pkg/testing"
)

func TestRegisterDevice_Upsert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := braceObj.Device.RegisterDevice(ctx, "brace-1", "Left knee")
	require.NoError(t, err)
	_, err = braceObj.Device.RegisterDevice(ctx, "brace-1", "Right knee")
	require.NoError(t, err)

	var devices []models.Device
	require.NoError(t, braceObj.Db.Conn.Find(&devices).Error)
	require.Len(t, devices, 1)
	assert.Equal(t, "Right knee", devices[0].DisplayName)

	_, err = braceObj.Device.RegisterDevice(ctx, " ", "x")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListDevices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, braceObj, _ := GetMockBraceWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()

	require.NoError(t, braceObj.Db.Conn.Create(&[]models.Reading{
		{BraceID: "brace-b", Angle: 10},
		{BraceID: "brace-a", Angle: 11},
		{BraceID: "brace-b", Angle: 12},
	}).Error)

	// registered without readings, not part of the view
	_, err := braceObj.Device.RegisterDevice(ctx, "brace-c", "Spare")
	require.NoError(t, err)
	_, err = braceObj.Device.RegisterDevice(ctx, "brace-a", "Patient A")
	require.NoError(t, err)

	devices, err := braceObj.Device.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, "brace-a", devices[0].BraceID)
	require.NotNil(t, devices[0].DisplayName)
	assert.Equal(t, "Patient A", *devices[0].DisplayName)

	assert.Equal(t, "brace-b", devices[1].BraceID)
	assert.Nil(t, devices[1].DisplayName)
}
