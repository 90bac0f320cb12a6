package main

import (
	"context"
	"log"

	"skillstage/adapters/bullhorn"
	"skillstage/adapters/excel"
	"skillstage/adapters/postgres"
	"skillstage/app"
	"skillstage/domain/staging"
	"skillstage/internal"
	"skillstage/internal/config"
	"skillstage/internal/errors"
	"skillstage/internal/migration"
	"skillstage/ports"
	"skillstage/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects the optional run-audit database and applies the
// schema.
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	if err := db.Ping(); err != nil {
		return nil, errors.DatabaseError("failed to ping database", err)
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	var runRepo ports.RunRepository
	if db != nil {
		defer db.Close()
		runRepo = postgres.NewRunRepository(db)
		log.Println("Run audit persistence enabled")
	} else {
		log.Println("No DATABASE_URL configured, runs kept in memory only")
	}

	source := excel.NewSurveyReader(excel.SurveyConfig{
		FilePath:  appConfig.Data.ExcelFile,
		SheetName: appConfig.Data.SheetName,
	})

	var uploader ports.CandidateUploader
	if appConfig.Upload.DryRun {
		log.Println("DRY_RUN enabled, staged records will not be uploaded")
	} else {
		auth := bullhorn.NewAuthenticator(bullhorn.AuthConfig{
			AuthURL:      appConfig.Bullhorn.AuthURL,
			RestURL:      appConfig.Bullhorn.RestURL,
			ClientID:     appConfig.Bullhorn.ClientID,
			ClientSecret: appConfig.Bullhorn.ClientSecret,
			Username:     appConfig.Bullhorn.Username,
			Password:     appConfig.Bullhorn.Password,
		})
		uploader = bullhorn.NewClient(auth, appConfig.Upload.Concurrency)
	}

	stagingService := app.NewStagingService(
		staging.DefaultSentinelSet(),
		staging.DefaultExperienceMapping(),
		logger,
	)
	syncService := app.NewSyncService(source, stagingService, uploader, runRepo, logger)

	server := ui.NewServer(syncService, runRepo, logger)
	log.Printf("Starting skills sync server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
