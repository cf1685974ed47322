package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/apikeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-g string   gRPC bind address (e.g. ":50051")
//	-b string   database driver: pgx, mysql or sqlite
//	-d string   database DSN
//	-m int      max open database connections
//	-s string   JWT HMAC secret key
//	-t int      admin session validity, minutes
//	-p string   API key prefix
//	-n int      random bytes per API key
//	-k int      API key validity, days
//	-r int      key creation attempts on collision
//	-w string   static files directory
//
// os.Args is first filtered with flagx.FilterArgs so the -c/-config flag and
// foreign flags do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-g", "-b", "-d", "-m", "-s", "-t", "-p", "-n", "-k", "-r", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (pgx, mysql, sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.DatabaseMaxOpenConns, "m", config.DatabaseMaxOpenConns, "max open database connections")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionMinutes := fs.Int("t", int(config.AdminSessionValidityDuration.Minutes()), "admin session validity (in minutes)")

	fs.StringVar(&config.KeyPrefix, "p", config.KeyPrefix, "API key prefix")
	fs.IntVar(&config.KeyRandomBytes, "n", config.KeyRandomBytes, "random bytes per API key")

	keyDays := fs.Int("k", int(config.KeyValidityDuration.Hours()/24), "API key validity (in days)")

	fs.IntVar(&config.KeyCreateAttempts, "r", config.KeyCreateAttempts, "key creation attempts")
	fs.StringVar(&config.StaticDir, "w", config.StaticDir, "static files directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AdminSessionValidityDuration = time.Duration(*sessionMinutes) * time.Minute
		case "k":
			config.KeyValidityDuration = time.Duration(*keyDays) * 24 * time.Hour
		}
	})
}
