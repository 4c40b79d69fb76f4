package mqtt

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"github.com/Kxngreece/Healstep-API/pkg/brace"
	"github.com/Kxngreece/Healstep-API/pkg/brace/mocks"
	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
	"github.com/Kxngreece/Healstep-API/pkg/db"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func setupSubscriber(t *testing.T, limiter *brace.RateLimiterStore) (*Subscriber, *mocks.MockIReading) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reading := mocks.NewMockIReading(ctrl)
	braceObj := (&brace.Brace{}).WithServices(brace.ServiceOpts{Reading: reading})

	return NewSubscriber(config.MqttConfig{Broker: "tcp://127.0.0.1:1883", ClientID: "test", QoS: 1}, braceObj, limiter), reading
}

func TestBraceIDFromTopic(t *testing.T) {
	braceID, err := BraceIDFromTopic("healstep/braces/brace-7/readings")
	require.NoError(t, err)
	assert.Equal(t, "brace-7", braceID)

	for _, topic := range []string{
		"healstep/braces//readings",
		"healstep/braces/a/b/readings",
		"healstep/devices/brace-7/readings",
		"healstep/braces/brace-7/alerts",
	} {
		_, err := BraceIDFromTopic(topic)
		assert.ErrorIs(t, err, ErrBadTopic, topic)
	}
}

func TestHandleReading(t *testing.T) {
	common.SetTestLoggerNop()

	s, reading := setupSubscriber(t, nil)

	reading.EXPECT().
		Ingest(gomock.Any(), &models.ReadingInput{BraceID: "brace-1", Angle: 35, MuscleReading: 10}).
		Return(&models.IngestResult{Reading: models.Reading{BraceID: "brace-1", Angle: 35}}, nil).
		Times(1)

	result, err := s.HandleReading(context.Background(),
		"healstep/braces/brace-1/readings",
		[]byte(`{"angle": 35, "muscle_reading": 10}`))
	require.NoError(t, err)
	assert.Equal(t, 35.0, result.Reading.Angle)
}

func TestHandleReading_BadPayload(t *testing.T) {
	common.SetTestLoggerNop()

	s, reading := setupSubscriber(t, nil)
	reading.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

	for _, payload := range []string{`not json`, `{}`, `{"angle": "high", "muscle_reading": 1}`} {
		_, err := s.HandleReading(context.Background(), "healstep/braces/brace-1/readings", []byte(payload))
		assert.ErrorIs(t, err, ErrBadPayload, payload)
	}
}

func TestHandleReading_RateLimited(t *testing.T) {
	common.SetTestLoggerNop()

	s, reading := setupSubscriber(t, brace.NewRateLimiterStore(1, 1))
	reading.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(&models.IngestResult{}, nil).Times(1)

	payload := []byte(`{"angle": 20, "muscle_reading": 1}`)

	_, err := s.HandleReading(context.Background(), "healstep/braces/brace-1/readings", payload)
	require.NoError(t, err)

	_, err = s.HandleReading(context.Background(), "healstep/braces/brace-1/readings", payload)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestOnMessage_LogsFailures(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)
	defer common.SetTestLoggerNop()

	s, reading := setupSubscriber(t, nil)
	reading.EXPECT().Ingest(gomock.Any(), gomock.Any()).Times(0)

	s.onMessage(nil, fakeMessage{topic: "healstep/braces/brace-1/readings", payload: []byte(`{}`)})

	assert.Contains(t, buf.String(), `"msg":"Reading not ingested"`)
	assert.Contains(t, buf.String(), `"logger":"mqtt_subscriber"`)
}

func TestOnMessage_IngestsIntoStore(t *testing.T) {
	common.SetTestLoggerNop()

	database, err := db.Open(db.UseMemorySqliteDialector(), db.PoolOpts{})
	require.NoError(t, err)
	defer database.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	notifier := mocks.NewMockINotifier(ctrl)
	notifier.EXPECT().NotifyAlert(gomock.Any()).Times(1)

	braceObj := brace.New(database, notifier)
	_, err = braceObj.Threshold.SetThreshold(context.Background(), &models.ThresholdInput{
		BraceID: "brace-1", UpperAngleThreshold: 30, LowerAngleThreshold: 5,
	})
	require.NoError(t, err)

	s := NewSubscriber(config.MqttConfig{}, braceObj, nil)
	s.onMessage(nil, fakeMessage{
		topic:   "healstep/braces/brace-1/readings",
		payload: []byte(`{"angle": 42.5, "muscle_reading": 3}`),
	})

	alerts, err := braceObj.Alert.AlertHistory(context.Background(), models.AlertFilter{BraceID: "brace-1"})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeUpperBreach, alerts[0].Type)
}

func TestStop_WithoutStart(t *testing.T) {
	s, _ := setupSubscriber(t, nil)
	assert.NotPanics(t, s.Stop)
}

func TestClientOptions(t *testing.T) {
	s, _ := setupSubscriber(t, nil)
	s.cfg.Username = "device"
	s.cfg.Password = "secret"

	opts := s.clientOptions()
	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "127.0.0.1:1883", opts.Servers[0].Host)
	assert.Equal(t, "test", opts.ClientID)
	assert.Equal(t, "device", opts.Username)
	assert.True(t, opts.AutoReconnect)
}
