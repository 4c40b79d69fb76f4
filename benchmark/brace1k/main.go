package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	healstepMqtt "github.com/Kxngreece/Healstep-API/pkg/mqtt"
)

var maxBraces = flag.Int("braces", 1000, "number of simulated braces")
var readingsPerBrace = flag.Int("readings", 3, "readings posted per brace")
var httpHostPort = flag.String("http", "127.0.0.1:1080", "http host:port")
var grpcHostPort = flag.String("grpc", "", "grpc host:port, health is checked when set")
var mqttBroker = flag.String("mqtt", "", "mqtt broker url, half the readings are published when set")

var rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var mqttClient paho.Client

var failures atomic.Int64
var alerts atomic.Int64

func main() {
	flag.Parse()

	braceIDs := make([]string, *maxBraces)
	for i := range *maxBraces {
		braceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v brace IDs\n", *maxBraces)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", *httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	if *grpcHostPort != "" {
		checkGrpcHealth()
	}

	if *mqttBroker != "" {
		opts := paho.NewClientOptions().AddBroker(*mqttBroker).SetClientID("healstep-bench-" + uuid.NewString())
		mqttClient = paho.NewClient(opts)
		if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
			log.Fatal("Failed to connect to MQTT broker:", token.Error())
		}
		defer mqttClient.Disconnect(250)
		fmt.Printf("mqtt broker connected\n")
	}

	run("inserted settings", *maxBraces, braceIDs, insertSettings)
	run("posted readings", (*maxBraces)*(*readingsPerBrace), braceIDs, func(braceID string) {
		for range *readingsPerBrace {
			postReading(braceID)
		}
	})

	fmt.Printf("failures=%v alerts=%v\n", failures.Load(), alerts.Load())
}

func run(label string, actions int, braceIDs []string, action func(string)) {
	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range braceIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			action(braceIDs[i])
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"%s for %v braces: used time=%v seconds, throughput=%v action/second\n",
		label, len(braceIDs), usedTime.Seconds(), float64(actions)/usedTime.Seconds(),
	)
}

func checkGrpcHealth() {
	conn, err := grpc.NewClient(*grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "healstep.Ingest"})
	if err != nil {
		log.Fatal("gRPC health check failed:", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		log.Fatal("gRPC health reports ", resp.GetStatus())
	}
	fmt.Printf("gRPC health verified\n")
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postJSON(path string, payload any) (*http.Response, error) {
	jsonData, _ := json.Marshal(payload)
	return http.Post(fmt.Sprintf("http://%s%s", *httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
}

func insertSettings(braceID string) {
	lower := rndFloat64(1.0, 30.0, 2)
	upper := rndFloat64(90.0, 140.0, 2)

	resp, err := postJSON("/settings", map[string]any{
		"brace_id":              braceID,
		"upper_angle_threshold": upper,
		"lower_angle_threshold": lower,
		"contact":               "bench@example.com",
	})
	if err != nil {
		failures.Add(1)
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		failures.Add(1)
	}
}

func postReading(braceID string) {
	angle := rndFloat64(1.0, 150.0, 2)
	muscle := rndFloat64(1.0, 100.0, 2)

	if mqttClient != nil && flipCoin() {
		payload, _ := json.Marshal(map[string]any{"angle": angle, "muscle_reading": muscle})
		topic := healstepMqtt.TopicPrefix + braceID + healstepMqtt.TopicSuffix
		if token := mqttClient.Publish(topic, 1, false, payload); token.Wait() && token.Error() != nil {
			failures.Add(1)
			fmt.Printf("\nerror: %v\n", token.Error())
		}
		return
	}

	resp, err := postJSON("/knee-brace", map[string]any{
		"brace_id":       braceID,
		"angle":          angle,
		"muscle_reading": muscle,
	})
	if err != nil {
		failures.Add(1)
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var body struct {
			Alert json.RawMessage `json:"alert"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Alert) > 0 {
			alerts.Add(1)
		}
	case http.StatusTooManyRequests:
		// limiter working as configured
	default:
		failures.Add(1)
		fmt.Printf("\nresponse status code != 201: %v\n", resp.Status)
	}
}
