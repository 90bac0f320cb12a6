// Command sync performs a single staging-and-upload run without starting
// the HTTP server. Useful for cron and for validating a spreadsheet with
// DRY_RUN=true.
package main

import (
	"context"
	"fmt"
	"log"

	"skillstage/adapters/bullhorn"
	"skillstage/adapters/excel"
	"skillstage/app"
	"skillstage/domain/staging"
	"skillstage/internal"
	"skillstage/internal/config"
	"skillstage/ports"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	source := excel.NewSurveyReader(excel.SurveyConfig{
		FilePath:  appConfig.Data.ExcelFile,
		SheetName: appConfig.Data.SheetName,
	})

	var uploader ports.CandidateUploader
	if !appConfig.Upload.DryRun {
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
	syncService := app.NewSyncService(source, stagingService, uploader, nil, logger)

	run, err := syncService.Run(context.Background())
	if err != nil {
		log.Fatalf("Sync failed: %v", err)
	}
	fmt.Print(run.Report)
}
