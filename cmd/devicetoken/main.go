// Command devicetoken issues the device token a user writes into the
// e-reader configuration, and optionally stores the user's sync overrides.
//
// Usage:
//
//	devicetoken -user 42 [-reading-threshold 5 -finished-threshold 95 -kepub true] [-- server flags]
//
// Everything after "--" is parsed as the server configuration, so the token
// is signed with the same key the server validates it with.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

func main() {
	log := logger.NewLogger("devicetoken")

	fs := flag.NewFlagSet("devicetoken", flag.ExitOnError)
	userID := fs.Int64("user", 0, "User id the token is issued for")
	readingThreshold := fs.Float64("reading-threshold", -1, "Per-user percent moving a book to READING (negative keeps the default)")
	finishedThreshold := fs.Float64("finished-threshold", -1, "Per-user percent moving a book to READ (negative keeps the default)")
	kepub := fs.String("kepub", "", "Per-user KEPUB override: true or false")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadStructuredConfig(fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := log.WithContext(context.Background())

	overrides, err := userOverrides(*userID, *readingThreshold, *finishedThreshold, *kepub)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid settings flags")
	}
	if overrides != nil {
		if err = saveOverrides(ctx, cfg, *overrides, log); err != nil {
			log.Fatal().Err(err).Msg("error saving user settings")
		}
	}

	token, err := service.NewAuthService(cfg.Auth, log).CreateToken(ctx, *userID)
	if err != nil {
		log.Fatal().Err(err).Int64("user_id", *userID).Msg("error creating device token")
	}

	baseURL := cfg.Server.PublicURL
	if baseURL == "" {
		baseURL = "http://" + cfg.Server.HTTPAddress
	}

	fmt.Printf("api_endpoint=%s/api/kobo/%s\n", baseURL, token.String())
}

// userOverrides returns nil when no override flag was given.
func userOverrides(userID int64, reading, finished float64, kepub string) (*models.UserSyncSettings, error) {
	settings := models.UserSyncSettings{UserID: userID}
	set := false

	if reading >= 0 {
		settings.ReadingThreshold = &reading
		set = true
	}
	if finished >= 0 {
		settings.FinishedThreshold = &finished
		set = true
	}
	if kepub != "" {
		v, err := strconv.ParseBool(kepub)
		if err != nil {
			return nil, fmt.Errorf("kepub: %w", err)
		}
		settings.ConvertToKepub = &v
		set = true
	}

	if !set {
		return nil, nil
	}
	return &settings, nil
}

func saveOverrides(ctx context.Context, cfg *config.StructuredConfig, settings models.UserSyncSettings, log *logger.Logger) error {
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	storages := store.NewStorages(db, log)
	return service.NewSettingsService(storages.SettingsRepository, cfg.App.Sync, log).
		UpdateUserSettings(ctx, settings)
}
