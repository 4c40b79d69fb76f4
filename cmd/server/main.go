package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Kxngreece/Healstep-API/pkg/brace"
	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
	"github.com/Kxngreece/Healstep-API/pkg/db"
	healstepGrpc "github.com/Kxngreece/Healstep-API/pkg/grpc"
	healstepHttp "github.com/Kxngreece/Healstep-API/pkg/http"
	healstepMqtt "github.com/Kxngreece/Healstep-API/pkg/mqtt"
	"github.com/Kxngreece/Healstep-API/pkg/notify"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := common.GetLogger()

	database, err := db.OpenFromConfig(cfg.Store)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer database.Close()

	var mailer notify.Mailer = notify.LogMailer{}
	if cfg.Mail.Enabled() {
		mailer = notify.NewSMTPMailer(cfg.Mail)
	}
	dispatcher := notify.NewDispatcher(mailer, cfg.Notify.Recipients, notify.DispatcherOpts{
		Workers:   cfg.Notify.Workers,
		QueueSize: cfg.Notify.QueueSize,
	})

	braceCore := brace.New(database, dispatcher)
	limiter := brace.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Notify.RecipientsFile != "" {
		go func() {
			if err := config.WatchRecipients(ctx, cfg.Notify.RecipientsFile, dispatcher.SetRecipients); err != nil {
				logger.Error("Recipients watcher stopped", zap.Error(err))
			}
		}()
	}

	var healthServer *healstepGrpc.HealthServer
	if cfg.GrpcHostPort != "" {
		healthServer = healstepGrpc.NewHealthServer(database)
		grpcServer := healstepGrpc.NewServer(healthServer)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go healthServer.Probe(ctx, healstepGrpc.DefaultProbeInterval)
		go func() {
			logger.Info("Starting gRPC server on: " + cfg.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
		defer grpcServer.GracefulStop()
	}

	var subscriber *healstepMqtt.Subscriber
	if cfg.Mqtt.Broker != "" {
		subscriber = healstepMqtt.NewSubscriber(cfg.Mqtt, braceCore, limiter)
		if err := subscriber.Start(); err != nil {
			log.Fatalf("mqtt subscriber failed to start: %v", err)
		}
	}

	rs := &healstepHttp.RestfulServer{
		Server:           gin.Default(),
		Brace:            braceCore,
		RateLimiterStore: limiter,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)),
		zap.String("store", cfg.Store.Type),
		zap.Bool("mail", cfg.Mail.Enabled()))

	httpServer := &http.Server{
		Addr:    cfg.HttpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	if healthServer != nil {
		healthServer.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	if subscriber != nil {
		subscriber.Stop()
	}

	// in-flight requests are done, flush the notifications they queued
	dispatcher.Close()
	_ = logger.Sync()
}
