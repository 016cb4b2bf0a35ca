/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/command/registry.go
*/

// Package command implements the command registry and dispatcher (C3):
// uppercased name lookup, arity validation, and the handler functions
// for every operation the keyspace engine exposes.
package command

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/mrdb/internal/clock"
	"github.com/akashmaji946/mrdb/internal/resp"
	"github.com/akashmaji946/mrdb/internal/store"
)

// Context bundles everything a handler needs to execute: the keyspace,
// the clock it should reason about "now" with, and the default snapshot
// path SAVE/LOAD fall back to when no path is given.
type Context struct {
	Keyspace        *store.Keyspace
	Clock           clock.Clock
	DefaultDumpPath string
	Save            func(path string, ks *store.Keyspace) error
	Load            func(path string, ks *store.Keyspace) error
}

// Handler executes a command's already-arity-checked argument vector
// (argv[0] is the first argument after the command name) and returns a
// reply value.
type Handler func(ctx *Context, argv [][]byte) resp.Value

// Spec is one registry entry: arity bounds and the handler to invoke.
// MaxArgc of -1 means unbounded.
type Spec struct {
	MinArgc int
	MaxArgc int
	Handler Handler
}

// Registry maps uppercased command names to their Spec.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry builds the registry with every command this server supports.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]Spec)}

	r.register("PING", 0, 1, cmdPing)

	r.register("DEL", 1, -1, cmdDel)
	r.register("EXPIRE", 2, 3, cmdExpire(1000))
	r.register("PEXPIRE", 2, 3, cmdExpire(1))
	r.register("EXPIREAT", 2, 3, cmdExpireAt(1000))
	r.register("PEXPIREAT", 2, 3, cmdExpireAt(1))
	r.register("TTL", 1, 1, cmdTTL)
	r.register("PTTL", 1, 1, cmdPTTL)

	r.register("SET", 2, -1, cmdSet)
	r.register("GET", 1, 1, cmdGet)
	r.register("INCR", 1, 1, cmdIncr)
	r.register("DECR", 1, 1, cmdDecr)
	r.register("INCRBY", 2, 2, cmdIncrBy)
	r.register("DECRBY", 2, 2, cmdDecrBy)

	r.register("LPUSH", 2, -1, cmdPush(true))
	r.register("RPUSH", 2, -1, cmdPush(false))
	r.register("LLEN", 1, 1, cmdLLen)
	r.register("LINDEX", 2, 2, cmdLIndex)
	r.register("LRANGE", 3, 3, cmdLRange)
	r.register("LSET", 3, 3, cmdLSet)
	r.register("LREM", 3, 3, cmdLRem)
	r.register("LINSERT", 4, 4, cmdLInsert)
	r.register("LPOP", 1, 2, cmdPop(true))
	r.register("RPOP", 1, 2, cmdPop(false))

	r.register("SAVE", 0, -1, cmdSave)
	r.register("LOAD", 0, -1, cmdLoad)

	return r
}

func (r *Registry) register(name string, min, max int, h Handler) {
	r.specs[name] = Spec{MinArgc: min, MaxArgc: max, Handler: h}
}

// Dispatch uppercases argv[0], looks it up, validates arity, and invokes
// the handler, exactly per the C3 dispatch algorithm.
func (r *Registry) Dispatch(ctx *Context, argv [][]byte) resp.Value {
	name := strings.ToUpper(string(argv[0]))
	spec, ok := r.specs[name]
	if !ok {
		return resp.NewError(fmt.Sprintf("ERR unknown command '%s'", argv[0]))
	}

	argc := len(argv) - 1
	if argc < spec.MinArgc || (spec.MaxArgc >= 0 && argc > spec.MaxArgc) {
		return resp.NewError(fmt.Sprintf("ERR wrong number of arguments for '%s' command", strings.ToLower(name)))
	}

	return spec.Handler(ctx, argv[1:])
}
