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
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/config"
	"liyu1981.xyz/glucose-tracker/pkg/db"
	trackerGrpc "liyu1981.xyz/glucose-tracker/pkg/grpc"
	trackerHttp "liyu1981.xyz/glucose-tracker/pkg/http"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
	"liyu1981.xyz/glucose-tracker/pkg/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration, see .env or the HEALTH_* environment: %v", err)
	}

	common.InitLogger(cfg.LogOptions())
	logger := common.GetLogger()
	defer func() { _ = logger.Sync() }()

	dialector, err := db.UseDialector(cfg.DBType, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	store, err := db.Open(dialector)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	trackerCore := tracker.New(store, clock)

	alarms, err := reminder.NewGocronAlarms(clock, cfg.ExactAlarms)
	if err != nil {
		log.Fatalf("create alarm scheduler: %v", err)
	}
	alarms.Start()
	defer func() { _ = alarms.Shutdown() }()

	notifier := reminder.NewDesktopNotifier(clock, cfg.Notifications)
	manager := reminder.NewManager(alarms, notifier, trackerCore.GetReminderStore(), clock, cfg.Location)

	dispatcher := reminder.NewDispatcher(manager, cfg.EventQueueSize)
	manager.WithDispatcher(dispatcher)
	go dispatcher.Run(ctx)

	trackerCore.WithServices(tracker.ServiceOpts{Reminder: manager})

	// startup counts as a boot: arm every enabled schedule
	if _, err := dispatcher.Post(reminder.BootEvent()); err != nil {
		logger.Error("Queue startup rebuild failed", zap.Error(err))
	}

	limiterInfo := fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)

	var grpcServer *grpc.Server
	if cfg.GRPCHostPort != "" {
		eventServer := &trackerGrpc.EventServer{
			Dispatcher: dispatcher,
			Reminders:  manager,
			Limiter:    common.NewClientLimiter(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst, clock),
		}
		interceptor := eventServer.CreateRateLimitInterceptor([]string{trackerGrpc.DeliverMethod})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		trackerGrpc.RegisterReminderEventsServer(grpcServer, eventServer)
		logger.Info("gRPC server created with:", zap.String("default_limiter", limiterInfo))

		listener, err := net.Listen("tcp", cfg.GRPCHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + cfg.GRPCHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
				stop()
			}
		}()
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	rs := &trackerHttp.RestfulServer{
		Server:     gin.Default(),
		Tracker:    trackerCore,
		Reminders:  manager,
		Dispatcher: dispatcher,
		Limiter:    common.NewClientLimiter(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst, clock),
	}
	rs.Setup()
	logger.Info("http server created with:", zap.String("default_limiter", limiterInfo))

	httpServer := &http.Server{
		Addr:    cfg.HTTPHostPort,
		Handler: rs.Server,
	}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HTTPHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed to serve", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
}
