package brace

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kxngreece/Healstep-API/pkg/brace/mocks"
	"github.com/Kxngreece/Healstep-API/pkg/db"
)

type testMocks struct {
	Reading   *mocks.MockIReading
	Threshold *mocks.MockIThreshold
	Alert     *mocks.MockIAlert
	Notifier  *mocks.MockINotifier
}

type useMocks struct {
	Reading   bool
	Threshold bool
	Alert     bool
}

// GetMockBraceWithMemorySqliteDialector builds a Brace on a fresh in-memory
// database. The notifier is always the mock, services are real unless
// selected in use.
func GetMockBraceWithMemorySqliteDialector(t *testing.T, use useMocks) (*gomock.Controller, *Brace, testMocks) {
	ctrl := gomock.NewController(t)

	m := testMocks{
		Reading:   mocks.NewMockIReading(ctrl),
		Threshold: mocks.NewMockIThreshold(ctrl),
		Alert:     mocks.NewMockIAlert(ctrl),
		Notifier:  mocks.NewMockINotifier(ctrl),
	}

	database, err := db.Open(db.UseMemorySqliteDialector(), db.PoolOpts{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	braceObj := New(database, m.Notifier)

	opts := ServiceOpts{}
	if use.Reading {
		opts.Reading = m.Reading
	}
	if use.Threshold {
		opts.Threshold = m.Threshold
	}
	if use.Alert {
		opts.Alert = m.Alert
	}
	braceObj.WithServices(opts)

	return ctrl, braceObj, m
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []any, match func(lobj map[string]any) bool) bool {
	for _, log := range logs {
		lobj, ok := log.(map[string]any)
		if ok && match(lobj) {
			return true
		}
	}
	return false
}
