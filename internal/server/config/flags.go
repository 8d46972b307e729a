package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/ecosocial/internal/flagx"
	"github.com/samber/oops"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     REST bind address (e.g., ":5001")
//	-g string     gRPC health bind address (e.g., ":50051")
//	-s string     storage backend: memory or postgres
//	-d string     PostgreSQL DSN
//	-l string     log level
//	-t duration   shutdown timeout (e.g., "10s")
//	-k int        session token bytes
//	-at uint      argon2 time cost
//	-am uint      argon2 memory, KiB
//	-ap uint      argon2 threads
//
// Arguments are first filtered with flagx.FilterArgs so -c/-config and
// unknown flags do not cause parse errors.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-s", "-d", "-l", "-t", "-k", "-at", "-am", "-ap"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run the REST server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run the gRPC health server")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend (memory|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "shutdown timeout")
	fs.IntVar(&config.TokenBytes, "k", config.TokenBytes, "session token bytes")

	argonTime := fs.Uint("at", uint(config.Argon2Time), "argon2 time cost")
	argonMemory := fs.Uint("am", uint(config.Argon2Memory), "argon2 memory (KiB)")
	argonThreads := fs.Uint("ap", uint(config.Argon2Threads), "argon2 threads")

	if err := fs.Parse(args); err != nil {
		return oops.Code("CONFIG_INVALID").Wrapf(err, "parsing flags")
	}

	config.Argon2Time = uint32(*argonTime)
	config.Argon2Memory = uint32(*argonMemory)
	config.Argon2Threads = uint8(*argonThreads)

	return nil
}
