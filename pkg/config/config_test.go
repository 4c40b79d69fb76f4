package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kxngreece/Healstep-API/pkg/common"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		common.EnvKeyDBType, common.EnvKeyDBHost, common.EnvKeyDBUser, common.EnvKeyDBName,
		common.EnvKeyDBPort, common.EnvKeyMailServer, common.EnvKeyMailFrom, common.EnvKeyMailUsername,
		common.EnvKeyDefaultRate, common.EnvKeyDefaultBurst, common.EnvKeyRecipientsFile,
		common.EnvKeyAlertRecipients, common.EnvKeyFeedbackRecipients, common.EnvKeyMqttQoS,
		common.EnvKeyNotifyWorkers, common.EnvKeyNotifyQueueSize, common.EnvKeyHttpHostPort,
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	common.SetTestLoggerNop()
	clearEnv(t)
	t.Setenv(common.EnvKeyDBType, "memory")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultHttpHostPort, cfg.HttpHostPort)
	assert.Equal(t, "", cfg.GrpcHostPort)
	assert.Equal(t, DefaultRate, cfg.DefaultRate)
	assert.Equal(t, DefaultBurst, cfg.DefaultBurst)
	assert.Equal(t, DefaultNotifyWorkers, cfg.Notify.Workers)
	assert.Equal(t, byte(DefaultMqttQoS), cfg.Mqtt.QoS)
	assert.False(t, cfg.Mail.Enabled())
	assert.True(t, cfg.Mail.StartTLS)
	assert.False(t, cfg.Mail.SSLTLS)
}

func TestFromEnv_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv(common.EnvKeyDBType, "postgres")
	t.Setenv(common.EnvKeyDBHost, "db.internal")
	t.Setenv(common.EnvKeyDBUser, "healstep")
	t.Setenv(common.EnvKeyDBName, "braces")
	t.Setenv(common.EnvKeyAlertRecipients, "nurse@clinic.io, doctor@clinic.io")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPostgresPort, cfg.Store.Port)
	assert.Contains(t, cfg.Store.GetDSN(), "host=db.internal port=5432 user=healstep")
	assert.Contains(t, cfg.Store.GetDSN(), "dbname=braces")
	assert.Equal(t, []string{"nurse@clinic.io", "doctor@clinic.io"}, cfg.Notify.Recipients.Alerts)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store", map[string]string{common.EnvKeyDBType: "oracle"}},
		{"postgres without user", map[string]string{common.EnvKeyDBType: "postgres", common.EnvKeyDBName: "x"}},
		{"bad rate", map[string]string{common.EnvKeyDBType: "memory", common.EnvKeyDefaultRate: "fast"}},
		{"bad qos", map[string]string{common.EnvKeyDBType: "memory", common.EnvKeyMqttQoS: "3"}},
		{"mail without from", map[string]string{common.EnvKeyDBType: "memory", common.EnvKeyMailServer: "smtp.x.io"}},
		{"zero workers", map[string]string{common.EnvKeyDBType: "memory", common.EnvKeyNotifyWorkers: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestMysqlDSN(t *testing.T) {
	store := StoreConfig{Type: "mysql", Host: "h", Port: 3306, User: "u", Password: "p", Name: "d"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=true&loc=UTC", store.GetDSN())
}

func TestPostgresDSN_QuotesValues(t *testing.T) {
	store := StoreConfig{Type: "postgres", Host: "db.internal", Port: 5432, User: "healstep",
		Password: `it's a \secret`, Name: "braces", SSLMode: "disable"}

	dsn := store.GetDSN()
	assert.Contains(t, dsn, `password='it\'s a \\secret'`)

	parsed, err := pgconn.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, `it's a \secret`, parsed.Password)
	assert.Equal(t, "healstep", parsed.User)
	assert.Equal(t, "braces", parsed.Database)

	store.Password = ""
	parsed, err = pgconn.ParseConfig(store.GetDSN())
	require.NoError(t, err)
	assert.Empty(t, parsed.Password)
	assert.Equal(t, "braces", parsed.Database)
}

func writeRecipients(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadRecipients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipients.yaml")
	writeRecipients(t, path, `
alerts:
  - nurse@clinic.io
feedback:
  - support@clinic.io
  - product@clinic.io
`)

	recipients, err := LoadRecipients(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"nurse@clinic.io"}, recipients.Alerts)
	assert.Len(t, recipients.Feedback, 2)

	writeRecipients(t, path, "alerts:\n  - not an address\n")
	_, err = LoadRecipients(path)
	assert.Error(t, err)

	_, err = LoadRecipients(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromEnv_RecipientsFileOverridesEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "recipients.yaml")
	writeRecipients(t, path, "alerts:\n  - file@clinic.io\n")

	t.Setenv(common.EnvKeyDBType, "memory")
	t.Setenv(common.EnvKeyAlertRecipients, "env@clinic.io")
	t.Setenv(common.EnvKeyRecipientsFile, path)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"file@clinic.io"}, cfg.Notify.Recipients.Alerts)
}

func TestWatchRecipients(t *testing.T) {
	common.SetTestLoggerNop()

	path := filepath.Join(t.TempDir(), "recipients.yaml")
	writeRecipients(t, path, "alerts:\n  - first@clinic.io\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Recipients, 16)
	done := make(chan error, 1)
	go func() {
		done <- WatchRecipients(ctx, path, func(r *Recipients) { changes <- r })
	}()

	// give the watcher time to register
	time.Sleep(200 * time.Millisecond)
	writeRecipients(t, path, "alerts:\n  - second@clinic.io\n")

	// a single write may surface as several events, the last one wins
	deadline := time.After(5 * time.Second)
	reloaded := false
	for !reloaded {
		select {
		case r := <-changes:
			reloaded = len(r.Alerts) == 1 && r.Alerts[0] == "second@clinic.io"
		case <-deadline:
			t.Fatal("expected recipients reload")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func waitForAlertRecipient(t *testing.T, changes <-chan *Recipients, want string) {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-changes:
			if len(r.Alerts) == 1 && r.Alerts[0] == want {
				return
			}
		case <-deadline:
			t.Fatalf("expected recipients reload with %s", want)
		}
	}
}

func TestWatchRecipients_AtomicRename(t *testing.T) {
	common.SetTestLoggerNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "recipients.yaml")
	writeRecipients(t, path, "alerts:\n  - first@clinic.io\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Recipients, 16)
	go func() {
		_ = WatchRecipients(ctx, path, func(r *Recipients) { changes <- r })
	}()

	time.Sleep(200 * time.Millisecond)

	for i, addr := range []string{"second@clinic.io", "third@clinic.io"} {
		tmp := filepath.Join(dir, fmt.Sprintf(".recipients-%d.tmp", i))
		writeRecipients(t, tmp, "alerts:\n  - "+addr+"\n")
		require.NoError(t, os.Rename(tmp, path))

		waitForAlertRecipient(t, changes, addr)
	}
}

func TestWatchRecipients_IgnoresSiblingFiles(t *testing.T) {
	common.SetTestLoggerNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "recipients.yaml")
	writeRecipients(t, path, "alerts:\n  - first@clinic.io\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Recipients, 16)
	go func() {
		_ = WatchRecipients(ctx, path, func(r *Recipients) { changes <- r })
	}()

	time.Sleep(200 * time.Millisecond)
	writeRecipients(t, filepath.Join(dir, "other.yaml"), "alerts:\n  - other@clinic.io\n")

	select {
	case r := <-changes:
		t.Fatalf("unexpected reload: %v", r.Alerts)
	case <-time.After(300 * time.Millisecond):
	}
}
