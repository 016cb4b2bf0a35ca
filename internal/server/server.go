/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/server/server.go
*/

// Package server implements the connection driver (C4): it accepts TCP
// connections, feeds each one through the protocol codec, dispatches the
// resulting argv, and writes replies back.
package server

import (
	"bufio"
	"net"
	"sync"
	"sync/atomic"

	"github.com/akashmaji946/mrdb/internal/command"
	"github.com/akashmaji946/mrdb/internal/logging"
	"github.com/akashmaji946/mrdb/internal/resp"
)

// Server owns the listener and the shared command context.
type Server struct {
	registry *command.Registry
	ctx      *command.Context
	logger   *logging.Logger
	limits   resp.Limits

	connCount int32
}

// New builds a Server that will dispatch through registry using ctx.
func New(registry *command.Registry, ctx *command.Context, logger *logging.Logger) *Server {
	return &Server{registry: registry, ctx: ctx, logger: logger, limits: resp.DefaultLimits}
}

// Serve accepts connections on ln until it is closed, handling each one
// in its own goroutine, and returns once every connection has finished.
func (s *Server) Serve(ln net.Listener) error {
	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConnection(conn)
		}()
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	id := atomic.AddInt32(&s.connCount, 1)
	s.logger.Info("[%d] accepted connection from %s", id, conn.RemoteAddr())
	defer func() {
		conn.Close()
		s.logger.Info("[%d] connection closed", id)
	}()

	reader := bufio.NewReader(conn)
	writer := resp.NewWriter(conn)

	for {
		argv, perr := resp.ReadRequest(reader, s.limits)
		if perr != nil {
			if perr.IOErr {
				return
			}
			writer.WriteValue(resp.NewError(perr.Message))
			writer.Flush()
			if perr.Fatal {
				s.logger.Info("[%d] closing on fatal protocol error: %s", id, perr.Message)
				return
			}
			continue
		}
		if len(argv) == 0 {
			// an empty request array carries no command: nothing to reply.
			continue
		}

		reply := s.registry.Dispatch(s.ctx, argv)
		if err := writer.WriteValue(reply); err != nil {
			return
		}
		if err := writer.Flush(); err != nil {
			return
		}
	}
}
