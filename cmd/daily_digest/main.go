package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"blogapi/config"
	"blogapi/database"
	"blogapi/repositories"
	"blogapi/services"
)

// Sends the owner a push summary of the last day's blog activity. Meant to
// run from cron.
func main() {
	cfg := config.Load()
	if cfg.FirebaseCredentialsPath == "" {
		log.Fatal("FIREBASE_CREDENTIALS_PATH not set")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error connecting to database: %s", err)
	}

	devices := repositories.NewDeviceRepository(db)
	notifier, err := services.NewNotifier(cfg.FirebaseCredentialsPath, devices)
	if err != nil {
		log.Fatalf("Error initializing firebase: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats := repositories.NewStatisticsRepository(db)
	activity, err := stats.ActivitySince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		log.Fatalf("Error collecting activity: %s", err)
	}

	body := fmt.Sprintf(
		"%d comments, %d post interactions, %d note interactions in the last day",
		activity.Comments, activity.PostInteractions, activity.NoteInteractions,
	)
	notifier.NotifyDigest(ctx, "Blog activity", body)
	log.Info("daily digest job finished")
}
