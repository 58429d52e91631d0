package main

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"feedbackhub/internal/app"
	"feedbackhub/internal/feedback"
	handlersFeedback "feedbackhub/internal/handlers/feedback"
	"feedbackhub/internal/kafka"
	"feedbackhub/internal/middleware"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.CfgRedis.Addr,
		Password: c.CfgRedis.Password,
		DB:       c.CfgRedis.DB,
	})

	// init kafka (события о принятом фидбеке, можно выключить в конфиге)
	var events kafka.EventProducer
	if c.CfgKafka.Enabled {
		producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warnf("error to close kafka producer: %v", err)
			}
		}()
		events = producer
	}

	// init repository
	feedbackRepository := feedback.NewFeedbackRepository(
		redisClient,
		logger,
		c.StoreMaxAttempts,
		c.StoreBackoffBase,
	)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(c.AllowedOrigin))
	r.Use(middleware.MetricsMiddleware)

	// init handlers
	feedbackHandlers := handlersFeedback.NewFeedbackHandler(
		logger,
		feedbackRepository,
		events,
		c.StoreTimeout,
	)

	api := r.PathPrefix("/api").Subrouter()

	// OPTIONS нужен для CORS preflight, его перехватывает middleware
	api.HandleFunc("/feedback", feedbackHandlers.Submit).Methods("POST", "OPTIONS")

	r.MethodNotAllowedHandler = http.HandlerFunc(feedbackHandlers.MethodNotAllowed)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
