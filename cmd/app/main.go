package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/account-ledger-service/pkg/accounts"
	"github.com/chris/account-ledger-service/pkg/events"
	accounthandlers "github.com/chris/account-ledger-service/pkg/handlers/accounts"
	"github.com/chris/account-ledger-service/pkg/handlers/transactions"
	"github.com/chris/account-ledger-service/pkg/lock"
	appmiddleware "github.com/chris/account-ledger-service/pkg/middleware"
	"github.com/chris/account-ledger-service/pkg/processor"
	dynamostore "github.com/chris/account-ledger-service/pkg/storage/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	usersTable := os.Getenv("DYNAMODB_USERS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	if usersTable == "" || accountsTable == "" || transactionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dynamostore.New(dbClient, usersTable, accountsTable, transactionsTable)

	// Per-account lock backed by Redis; every replica sharing the same Redis
	// shares the same lock space.
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Fatal("REDIS_ADDR environment variable not set")
	}
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})

	locker, err := lock.NewRedisLocker(redisClient, lock.DefaultOptions(), logger)
	if err != nil {
		log.Fatalf("failed to create lock manager: %v", err)
	}

	// Transaction events are optional: without a queue URL the publisher is a no-op.
	var publisher events.Publisher = &events.NoOpPublisher{}
	if queueURL := os.Getenv("SQS_TRANSACTION_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	}

	proc := processor.New(store)
	accountService := accounts.NewService(store)

	txHandler := transactions.NewTransactionsHandler(proc, locker, publisher, logger)
	txHandler.AdmissionDelay = admissionDelayFromEnv()

	accountHandler := accounthandlers.NewAccountsHandler(accountService, logger)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(appmiddleware.RequestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Post("/transaction/use", txHandler.UseBalance)
	router.Post("/transaction/cancel", txHandler.CancelBalance)
	router.Get("/transaction/{transactionId}", func(w http.ResponseWriter, r *http.Request) {
		txHandler.QueryTransaction(w, r, chi.URLParam(r, "transactionId"))
	})

	router.Post("/account", accountHandler.CreateAccount)
	router.Delete("/account", accountHandler.CloseAccount)
	router.Get("/account", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		accountHandler.ListAccounts(w, r, userID)
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// admissionDelayFromEnv reads the pre-lock admission delay. Zero unless
// explicitly configured.
func admissionDelayFromEnv() time.Duration {
	raw := os.Getenv("ADMISSION_DELAY")
	if raw == "" {
		return 0
	}

	delay, err := time.ParseDuration(raw)
	if err != nil || delay < 0 {
		log.Printf("ignoring invalid ADMISSION_DELAY %q", raw)
		return 0
	}

	return delay
}
