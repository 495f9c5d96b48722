// Command beacon-send fires a short demo event sequence at an ingestion
// endpoint. It wires the SDK the way an embedding application would:
// layered config, host environment enrichment, HTTP transport.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	beacon "github.com/beaconhq/beacon-go"
	"github.com/beaconhq/beacon-go/envinfo"
	"github.com/beaconhq/beacon-go/internal/config"
	"github.com/beaconhq/beacon-go/logging"
	"github.com/beaconhq/beacon-go/transport"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	cfg := config.LoadConfig()

	apiKey := cfg.APIKey
	if apiKey == "" {
		key, err := promptAPIKey()
		if err != nil {
			log.Fatalf("reading API key: %v", err)
		}
		apiKey = key
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	sdkCfg := &beacon.Config{}
	sdkCfg.Configure(apiKey)

	composer := beacon.NewComposer(
		cfg.IngestEndpoint,
		sdkCfg,
		transport.NewHTTP(nil),
		envinfo.Host{AppVersion: cfg.AppVersion},
		logger,
	)

	if err := run(context.Background(), composer, cfg.UserID); err != nil {
		log.Fatalf("%v", err)
	}
}

// run sends open_app -> click -> session_duration -> close_app and waits
// for every dispatch result.
func run(ctx context.Context, composer *beacon.Composer, userID string) error {
	sessionID := beacon.NewSessionID()
	start := time.Now()

	session := beacon.EventOptions{SessionID: sessionID}

	results := []<-chan error{
		composer.LogOpenAppEvent(ctx, userID, beacon.EventOptions{
			SessionID: sessionID,
			Fields:    []beacon.Field{beacon.FieldAll},
		}),
		composer.LogClickEvent(ctx, userID, "demo_button", session),
	}
	for _, done := range results {
		if err := <-done; err != nil {
			return err
		}
	}

	if err := <-composer.LogSessionDuration(ctx, userID, sessionID, time.Since(start).Seconds(), beacon.EventOptions{}); err != nil {
		return err
	}
	if err := <-composer.LogCloseAppEvent(ctx, userID, session); err != nil {
		return err
	}

	fmt.Println("all events delivered")
	return nil
}

// promptAPIKey reads the API key from the terminal without echo.
func promptAPIKey() (string, error) {
	fmt.Fprint(os.Stderr, "API key: ")
	key, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(key), nil
}
