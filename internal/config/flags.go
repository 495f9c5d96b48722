package config

import (
	"flag"
	"os"

	"github.com/beaconhq/beacon-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   ingestion endpoint URL (default from Config)
//	-k string   project API key
//	-v string   application version reported in events
//	-u string   user identifier stamped on events
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-k", "-v", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IngestEndpoint, "e", cfg.IngestEndpoint, "ingestion endpoint URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "project API key")
	fs.StringVar(&cfg.AppVersion, "v", cfg.AppVersion, "application version")
	fs.StringVar(&cfg.UserID, "u", cfg.UserID, "user identifier")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
