/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/config/config.go
*/

// Package config parses the server's command-line surface: a required
// listening port and two conveniences (bind address, snapshot path).
package config

import (
	"errors"
	"flag"
)

// Config is the fully parsed CLI surface.
type Config struct {
	Port     int
	Bind     string
	DumpFile string
}

// Parse reads args (typically os.Args[1:]) into a Config. --port is
// required; --bind and --dump-file fall back to their documented
// defaults.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("mrdb-server", flag.ContinueOnError)
	port := fs.Int("port", 0, "TCP port to listen on (required)")
	bind := fs.String("bind", "127.0.0.1", "address to bind the listener to")
	dumpFile := fs.String("dump-file", "./dump.mrdb", "default path for SAVE/LOAD")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *port <= 0 || *port > 65535 {
		return Config{}, errors.New("--port is required and must be a valid TCP port")
	}
	return Config{Port: *port, Bind: *bind, DumpFile: *dumpFile}, nil
}
