/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/cmd/mrdb-server/main.go
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/mrdb/internal/clock"
	"github.com/akashmaji946/mrdb/internal/command"
	"github.com/akashmaji946/mrdb/internal/config"
	"github.com/akashmaji946/mrdb/internal/logging"
	"github.com/akashmaji946/mrdb/internal/server"
	"github.com/akashmaji946/mrdb/internal/snapshot"
	"github.com/akashmaji946/mrdb/internal/store"
)

func main() {
	logger := logging.New()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ks := store.New(clock.Real{})
	ctx := &command.Context{
		Keyspace:        ks,
		Clock:           clock.Real{},
		DefaultDumpPath: cfg.DumpFile,
		Save:            snapshot.Save,
		Load:            snapshot.Load,
	}
	registry := command.NewRegistry()

	addr := fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on %s: %v", addr, err)
		os.Exit(1)
	}
	logger.Info("listening on %s", addr)

	srv := server.New(registry, ctx, logger)
	if err := srv.Serve(ln); err != nil {
		logger.Warn("listener closed: %v", err)
	}
}
