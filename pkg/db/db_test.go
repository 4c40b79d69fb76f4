package db

import (
	"context"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
	"github.com/Kxngreece/Healstep-API/pkg/models"
	_ "github.com/Kxngreece/Healstep-API/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := Open(UseMemorySqliteDialector(), PoolOpts{})
	require.NoError(t, err)
	defer instance.Close()

	var tables = []string{"knee_brace", "settings", "alerts", "devices", "users", "appointment", "feedback"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}

	assert.NoError(t, instance.Ping(context.Background()))
}

func TestMemoryDatabasesAreIsolated(t *testing.T) {
	common.SetTestLoggerNop()

	first, err := Open(UseMemorySqliteDialector(), PoolOpts{})
	require.NoError(t, err)
	defer first.Close()

	second, err := Open(UseMemorySqliteDialector(), PoolOpts{})
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Conn.Create(&models.Device{BraceID: "brace-1", DisplayName: "left knee"}).Error)

	var count int64
	require.NoError(t, second.Conn.Model(&models.Device{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, first.Conn.Model(&models.Device{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentTransactionsShareThePool(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := Open(UseMemorySqliteDialector(), PoolOpts{})
	require.NoError(t, err)
	defer instance.Close()

	const goroutineCount = 20

	var wg sync.WaitGroup
	errs := make(chan error, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- instance.Conn.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&models.Reading{BraceID: "brace-pool", Angle: 10}).Error
			})
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var count int64
	require.NoError(t, instance.Conn.Model(&models.Reading{}).Where("brace_id = ?", "brace-pool").Count(&count).Error)
	assert.Equal(t, int64(goroutineCount), count)
}

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		store config.StoreConfig
		name  string
	}{
		{config.StoreConfig{Type: "postgres", Host: "h", Port: 5432, User: "u", Name: "d"}, "postgres"},
		{config.StoreConfig{Type: "mysql", Host: "h", Port: 3306, User: "u", Name: "d"}, "mysql"},
		{config.StoreConfig{Type: "file", Path: "x.db"}, "sqlite"},
		{config.StoreConfig{Type: "memory"}, "sqlite"},
	}

	for _, tt := range tests {
		dialector, err := DialectorFor(tt.store)
		require.NoError(t, err)
		assert.Equal(t, tt.name, dialector.Name())
	}

	_, err := DialectorFor(config.StoreConfig{Type: "oracle"})
	assert.Error(t, err)
}

func TestOpen_ClosesPoolWhenMigrationFails(t *testing.T) {
	common.SetTestLoggerNop()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// every migration statement is unexpected and fails
	mock.MatchExpectationsInOrder(false)
	mock.ExpectClose()

	instance, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), PoolOpts{})
	assert.Nil(t, instance)
	assert.ErrorContains(t, err, "failed to migrate database")

	assert.NoError(t, mock.ExpectationsWereMet())
}
