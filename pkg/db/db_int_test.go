package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
)

func TestWithFilePath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	testPath := filepath.Join(t.TempDir(), "test.db")

	instance, err := OpenFromConfig(config.StoreConfig{Type: "file", Path: testPath, MaxOpenConns: 4})
	if err != nil || instance == nil || instance.Conn == nil {
		t.Fatalf("Expected non-nil DB connection, got error %v", err)
	}
	defer instance.Close()

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
