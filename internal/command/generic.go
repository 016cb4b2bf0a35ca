/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/command/generic.go
*/
package command

import (
	"strings"

	"github.com/akashmaji946/mrdb/internal/resp"
	"github.com/akashmaji946/mrdb/internal/store"
)

func cmdDel(ctx *Context, argv [][]byte) resp.Value {
	return resp.NewInteger(int64(ctx.Keyspace.Del(argv)))
}

// cmdExpire builds the EXPIRE/PEXPIRE handler; unit converts the
// command's relative timeout into milliseconds (1000 for seconds, 1 for
// milliseconds already).
func cmdExpire(unit int64) Handler {
	return func(ctx *Context, argv [][]byte) resp.Value {
		return expireImpl(ctx, argv, unit, false)
	}
}

// cmdExpireAt builds the EXPIREAT/PEXPIREAT handler; the timestamp is
// already absolute, unit converts seconds to milliseconds when needed.
func cmdExpireAt(unit int64) Handler {
	return func(ctx *Context, argv [][]byte) resp.Value {
		return expireImpl(ctx, argv, unit, true)
	}
}

func expireImpl(ctx *Context, argv [][]byte, unit int64, absolute bool) resp.Value {
	key := argv[0]
	n, ok := store.ParseInt64(argv[1])
	if !ok {
		return resp.NewError("ERR value is not an integer or out of range")
	}

	cond := store.CondNone
	if len(argv) == 3 {
		switch strings.ToUpper(string(argv[2])) {
		case "NX":
			cond = store.CondNX
		case "XX":
			cond = store.CondXX
		case "GT":
			cond = store.CondGT
		case "LT":
			cond = store.CondLT
		default:
			return resp.NewError("ERR syntax error")
		}
	}

	var absMs int64
	if absolute {
		absMs = n * unit
	} else {
		absMs = ctx.Clock.NowMs() + n*unit
	}

	return resp.NewInteger(ctx.Keyspace.SetExpireAt(key, absMs, cond))
}

func cmdTTL(ctx *Context, argv [][]byte) resp.Value {
	return resp.NewInteger(ctx.Keyspace.TTLSeconds(argv[0]))
}

func cmdPTTL(ctx *Context, argv [][]byte) resp.Value {
	return resp.NewInteger(ctx.Keyspace.TTLMillis(argv[0]))
}
