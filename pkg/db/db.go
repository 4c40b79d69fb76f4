package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

// DB wraps the gorm handle. Conn is backed by a database/sql pool, so one DB
// is shared by every request and each transaction checks out its own
// connection.
type DB struct {
	Conn *gorm.DB
}

type PoolOpts struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func PoolOptsFrom(store config.StoreConfig) PoolOpts {
	return PoolOpts{
		MaxOpenConns:    store.MaxOpenConns,
		MaxIdleConns:    store.MaxIdleConns,
		ConnMaxLifetime: store.ConnMaxLifetime,
	}
}

// Open connects, configures the pool and migrates the service tables.
func Open(dialector gorm.Dialector, pool PoolOpts) (*DB, error) {
	logger := common.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if isMemorySqlite(dialector) {
		// the in-memory database lives as long as its last connection
		pool = PoolOpts{MaxOpenConns: 1, MaxIdleConns: 1}
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	logger.Info("Connected to database with dialector:",
		zap.String("dialector", dialector.Name()),
		zap.Int("max_open_conns", pool.MaxOpenConns))

	if err := conn.AutoMigrate(models.AllModels()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

// OpenFromConfig picks the dialector named by the store config.
func OpenFromConfig(store config.StoreConfig) (*DB, error) {
	dialector, err := DialectorFor(store)
	if err != nil {
		return nil, err
	}
	return Open(dialector, PoolOptsFrom(store))
}

func DialectorFor(store config.StoreConfig) (gorm.Dialector, error) {
	switch store.Type {
	case "postgres":
		return UsePostgresDialector(store.GetDSN()), nil
	case "mysql":
		return UseMysqlDialector(store.GetDSN()), nil
	case "file":
		return UseSqliteDialector(store.Path), nil
	case "memory":
		return UseMemorySqliteDialector(), nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", store.Type)
	}
}

func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

func UseMysqlDialector(dsn string) gorm.Dialector {
	return mysql.Open(dsn)
}

func UseSqliteDialector(dbPath string) gorm.Dialector {
	if dbPath == "" {
		dbPath = "healstep.db"
	}
	return sqlite.Open(dbPath + "?_journal_mode=WAL&_busy_timeout=5000")
}

// UseMemorySqliteDialector returns a private in-memory database, every call
// gets a fresh one.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

func isMemorySqlite(dialector gorm.Dialector) bool {
	d, ok := dialector.(*sqlite.Dialector)
	return ok && strings.Contains(d.DSN, "mode=memory")
}
