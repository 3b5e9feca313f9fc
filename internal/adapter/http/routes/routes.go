package routes

import (
	"context"
	"database/sql"
	"fmt"
	"insurances/internal/adapter/http/handlers"
	repository2 "insurances/internal/adapter/persistence/repository"
	"insurances/internal/infrastructure/config"
	"insurances/internal/infrastructure/database"
	"insurances/internal/usecase"
	"insurances/internal/usecase/interfaces"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Run will start the server
func Run() {
	if err := run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// run owns the storage handle, so it is closed on every return path before
// Run exits the process.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router)

	db, err := getRoutes(router, cfg)
	if err != nil {
		return fmt.Errorf("wire storage: %w", err)
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("[http] closing sqlite failed err=%v", err)
			}
		}()
	}

	log.Printf("[http] listening port=%d storage=%s", cfg.HTTPPort, cfg.StorageDriver)
	return router.Run(":" + strconv.Itoa(cfg.HTTPPort))
}

// getRoutes builds repositories for the configured storage driver and mounts
// the /v1 groups. The returned *sql.DB is nil unless the sqlite driver is used.
func getRoutes(router *gin.Engine, cfg config.Config) (*sql.DB, error) {
	proposalRepo, hiringRepo, db, err := newRepositories(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo)
	hiringUseCase := usecase.NewHiringUseCase(hiringRepo, proposalUseCase)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase, cfg.DefaultPageSize, cfg.MaxPageSize)
	hiringHandler := handlers.NewHiringHandler(hiringUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInsuranceRoutes(v1, proposalHandler, hiringHandler)
	return db, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (interfaces.IProposalRepository, interfaces.IHiringRepository, *sql.DB, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return repository2.NewProposalSQLiteRepository(db), repository2.NewHiringSQLiteRepository(db), db, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, nil, err
		}
		hiringRepo := repository2.NewHiringDynamoRepository(ddb, cfg.DynamoDB.HiringsTable)
		proposalRepo := repository2.NewProposalDynamoRepository(ddb, cfg.DynamoDB.ProposalsTable, hiringRepo)
		return proposalRepo, hiringRepo, nil, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
