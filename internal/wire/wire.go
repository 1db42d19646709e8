// Package wire provides dependency injection for the ladder application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	cliadapter "github.com/example/ladder/internal/adapters/cli"
	"github.com/example/ladder/internal/adapters/persistence"
	"github.com/example/ladder/internal/adapters/sqlite"
	"github.com/example/ladder/internal/app"
	"github.com/example/ladder/internal/config"
	"github.com/example/ladder/internal/db"
	"github.com/example/ladder/internal/ports/primary"
)

var (
	cfg           *config.Config
	matrixService primary.MatrixService
	adminService  primary.AdminService
	seedService   primary.SeedService
	once          sync.Once
)

// MatrixService returns the singleton MatrixService instance.
func MatrixService() primary.MatrixService {
	once.Do(initServices)
	return matrixService
}

// AdminService returns the singleton AdminService instance.
func AdminService() primary.AdminService {
	once.Do(initServices)
	return adminService
}

// SeedService returns the singleton SeedService instance.
func SeedService() primary.SeedService {
	once.Do(initServices)
	return seedService
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	configDir, err := config.DefaultDir()
	if err != nil {
		logger.Fatal("failed to resolve config directory", "err", err)
	}
	cfg, err = config.Load(configDir)
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}

	if !cfg.Color {
		color.NoColor = true
	}
	if cfg.DBPath != "" {
		db.SetPath(cfg.DBPath)
	}

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("failed to initialize database", "err", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	jobLevelRepo := sqlite.NewJobLevelRepository(database)
	criterionRepo := sqlite.NewCriterionRepository(database)
	capabilityRepo := sqlite.NewCapabilityRepository(database)
	historyRepo := sqlite.NewEditHistoryRepository(database)
	overviewRepo := sqlite.NewOverviewRepository(database)

	var fallback primary.FallbackProvider
	if cfg.Fallback {
		fallback = persistence.NewStaticFallbackProvider()
	}

	// Create services (primary ports implementation)
	matrixService = app.NewMatrixService(jobLevelRepo, criterionRepo, capabilityRepo, historyRepo, overviewRepo, fallback, logger)
	adminService = app.NewAdminService(jobLevelRepo, criterionRepo, capabilityRepo, historyRepo, overviewRepo)
	seedService = app.NewSeedService(jobLevelRepo, criterionRepo, capabilityRepo, historyRepo, overviewRepo, logger)
}

// MatrixAdapter returns a new MatrixAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func MatrixAdapter() *cliadapter.MatrixAdapter {
	return MatrixAdapterWithOutput(os.Stdout)
}

// MatrixAdapterWithOutput returns a new MatrixAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func MatrixAdapterWithOutput(out io.Writer) *cliadapter.MatrixAdapter {
	once.Do(initServices)
	return cliadapter.NewMatrixAdapter(matrixService, out)
}

// AdminAdapter returns a new AdminAdapter writing to stdout.
func AdminAdapter() *cliadapter.AdminAdapter {
	return AdminAdapterWithOutput(os.Stdout)
}

// AdminAdapterWithOutput returns a new AdminAdapter writing to the given output.
func AdminAdapterWithOutput(out io.Writer) *cliadapter.AdminAdapter {
	once.Do(initServices)
	return cliadapter.NewAdminAdapter(adminService, out)
}
