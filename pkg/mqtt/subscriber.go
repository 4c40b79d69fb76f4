package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"

	"github.com/Kxngreece/Healstep-API/pkg/brace"
	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

const (
	TopicPrefix = "healstep/braces/"
	TopicSuffix = "/readings"
	// TopicFilter subscribes to readings of every brace.
	TopicFilter = TopicPrefix + "+" + TopicSuffix

	ingestTimeout = 10 * time.Second
)

var (
	ErrBadTopic    = errors.New("unexpected topic")
	ErrBadPayload  = errors.New("invalid reading payload")
	ErrRateLimited = errors.New("rate limited")
)

type ReadingMessage struct {
	Angle         float64 `zog:"angle"`
	MuscleReading float64 `zog:"muscle_reading"`
}

var readingMessageSchema = z.Struct(z.Shape{
	"Angle":         z.Float64().Required(),
	"MuscleReading": z.Float64().Required(),
})

// Subscriber feeds brace readings published over MQTT into the same ingest
// path as POST /knee-brace. Each message is one Ingest call.
type Subscriber struct {
	Brace            *brace.Brace
	RateLimiterStore *brace.RateLimiterStore

	cfg    config.MqttConfig
	client paho.Client
}

func NewSubscriber(cfg config.MqttConfig, braceCore *brace.Brace, limiter *brace.RateLimiterStore) *Subscriber {
	return &Subscriber{
		Brace:            braceCore,
		RateLimiterStore: limiter,
		cfg:              cfg,
	}
}

func logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameMqttSubscriber)
}

// BraceIDFromTopic extracts the brace id from healstep/braces/{brace_id}/readings.
func BraceIDFromTopic(topic string) (string, error) {
	if !strings.HasPrefix(topic, TopicPrefix) || !strings.HasSuffix(topic, TopicSuffix) {
		return "", fmt.Errorf("%w: %s", ErrBadTopic, topic)
	}
	braceID := strings.TrimSuffix(strings.TrimPrefix(topic, TopicPrefix), TopicSuffix)
	if braceID == "" || strings.Contains(braceID, "/") {
		return "", fmt.Errorf("%w: %s", ErrBadTopic, topic)
	}
	return braceID, nil
}

func (s *Subscriber) HandleReading(ctx context.Context, topic string, payload []byte) (*models.IngestResult, error) {
	braceID, err := BraceIDFromTopic(topic)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}

	var msg ReadingMessage
	if issues := readingMessageSchema.Parse(data, &msg); issues != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, issues)
	}

	if s.RateLimiterStore != nil && !s.RateLimiterStore.Allow(braceID) {
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, braceID)
	}

	return s.Brace.Reading.Ingest(ctx, &models.ReadingInput{
		BraceID:       braceID,
		Angle:         msg.Angle,
		MuscleReading: msg.MuscleReading,
	})
}

func (s *Subscriber) onMessage(_ paho.Client, msg paho.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	result, err := s.HandleReading(ctx, msg.Topic(), msg.Payload())
	switch {
	case errors.Is(err, ErrRateLimited):
		logger().Warn("Reading dropped", zap.String("topic", msg.Topic()), zap.Error(err))
	case err != nil:
		logger().Error("Reading not ingested", zap.String("topic", msg.Topic()), zap.Error(err))
	default:
		logger().Debug("Reading ingested",
			zap.String("brace_id", result.Reading.BraceID),
			zap.Bool("alert", result.Alert != nil))
	}
}

func (s *Subscriber) clientOptions() *paho.ClientOptions {
	opts := paho.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	opts.SetClientID(s.cfg.ClientID)
	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
	}
	if s.cfg.Password != "" {
		opts.SetPassword(s.cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	// subscriptions do not survive a clean-session reconnect
	opts.SetOnConnectHandler(func(c paho.Client) {
		if token := c.Subscribe(TopicFilter, s.cfg.QoS, s.onMessage); token.Wait() && token.Error() != nil {
			logger().Error("Subscribe failed", zap.String("topic", TopicFilter), zap.Error(token.Error()))
			return
		}
		logger().Info("Subscribed", zap.String("topic", TopicFilter), zap.Uint8("qos", s.cfg.QoS))
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger().Warn("Connection to broker lost", zap.Error(err))
	})
	return opts
}

func (s *Subscriber) Start() error {
	s.client = paho.NewClient(s.clientOptions())
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	logger().Info("Connected to broker", zap.String("broker", s.cfg.Broker))
	return nil
}

func (s *Subscriber) Stop() {
	if s.client == nil {
		return
	}
	s.client.Unsubscribe(TopicFilter).WaitTimeout(time.Second)
	s.client.Disconnect(250)
}
