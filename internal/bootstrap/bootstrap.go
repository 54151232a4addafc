package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/bureauchain/diplomachain/internal/app/controllers"
	appRepos "github.com/bureauchain/diplomachain/internal/app/repositories"
	appRoutes "github.com/bureauchain/diplomachain/internal/app/routes"
	appServices "github.com/bureauchain/diplomachain/internal/app/services"
	"github.com/bureauchain/diplomachain/internal/config"
	"github.com/bureauchain/diplomachain/internal/db"
	"github.com/bureauchain/diplomachain/internal/ledger"
	appMiddleware "github.com/bureauchain/diplomachain/internal/middleware"
	"github.com/bureauchain/diplomachain/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	LedgerClient      *ledger.DiplomaClient
	Services          *appServices.Services
	DiplomaController *appControllers.DiplomaController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the connection pool of the reference store. The
// schema itself is administered outside this application.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	return dbPool, nil
}

// ConnectLedger establishes the Fabric Gateway session.
func ConnectLedger(cfg *config.Config, lgr zerolog.Logger) (*ledger.Connection, error) {
	lgr.Info().
		Str("peer", cfg.Fabric.PeerEndpoint).
		Str("channel", cfg.Fabric.ChannelName).
		Str("chaincode", cfg.Fabric.ChaincodeName).
		Msg("Connecting to Fabric gateway...")

	conn, err := ledger.Connect(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to Fabric gateway")
		return nil, err
	}
	lgr.Info().Msg("Fabric gateway connection established.")
	return conn, nil
}

// BuildDependencies initializes repositories, the ledger client, services,
// and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, conn *ledger.Connection, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.LedgerClient = ledger.NewDiplomaClient(conn)
	deps.Services = appServices.NewServices(deps.Repos, deps.LedgerClient)
	deps.DiplomaController = appControllers.NewDiplomaController(deps.Services.Diplomas, deps.LedgerClient)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router, deps.DiplomaController)

	return router
}
