/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/command/strings.go
*/
package command

import (
	"strings"

	"github.com/akashmaji946/mrdb/internal/resp"
	"github.com/akashmaji946/mrdb/internal/store"
)

func cmdSet(ctx *Context, argv [][]byte) resp.Value {
	key, value := argv[0], argv[1]
	opts := store.SetOptions{}
	hasNX, hasXX, hasExpireOpt := false, false, false

	rest := argv[2:]
	for i := 0; i < len(rest); i++ {
		tok := strings.ToUpper(string(rest[i]))
		switch tok {
		case "NX":
			if hasXX {
				return resp.NewError("ERR syntax error")
			}
			opts.NX, hasNX = true, true
		case "XX":
			if hasNX {
				return resp.NewError("ERR syntax error")
			}
			opts.XX, hasXX = true, true
		case "GET":
			opts.Get = true
		case "KEEPTTL":
			if hasExpireOpt {
				return resp.NewError("ERR syntax error")
			}
			opts.KeepTTL = true
		case "EX", "PX", "EXAT", "PXAT":
			if hasExpireOpt || opts.KeepTTL {
				return resp.NewError("ERR syntax error")
			}
			i++
			if i >= len(rest) {
				return resp.NewError("ERR syntax error")
			}
			n, ok := store.ParseInt64(rest[i])
			if !ok {
				return resp.NewError("ERR value is not an integer or out of range")
			}
			if (tok == "EX" || tok == "PX") && n <= 0 {
				return resp.NewError("ERR value is not an integer or out of range")
			}
			switch tok {
			case "EX":
				opts.Mode = store.ExpireEX
			case "PX":
				opts.Mode = store.ExpirePX
			case "EXAT":
				opts.Mode = store.ExpireEXAT
			case "PXAT":
				opts.Mode = store.ExpirePXAT
			}
			opts.ExpireAt = n
			hasExpireOpt = true
		default:
			return resp.NewError("ERR syntax error")
		}
	}

	old, hadOld, wrongType, applied := ctx.Keyspace.SetString(key, value, opts)
	if wrongType {
		return resp.NewError(store.ErrWrongType.Error())
	}

	if opts.Get {
		reply := resp.NewNullBulk()
		if hadOld {
			reply = resp.NewBulk(old)
		}
		if !applied {
			return reply
		}
		return reply
	}

	if !applied {
		return resp.NewNullBulk()
	}
	return resp.NewSimpleString("OK")
}

func cmdGet(ctx *Context, argv [][]byte) resp.Value {
	v, ok, err := ctx.Keyspace.Get(argv[0])
	if err != nil {
		return resp.NewError(err.Error())
	}
	if !ok {
		return resp.NewNullBulk()
	}
	return resp.NewBulk(v)
}

func cmdIncr(ctx *Context, argv [][]byte) resp.Value { return incrByReply(ctx, argv[0], 1) }
func cmdDecr(ctx *Context, argv [][]byte) resp.Value { return incrByReply(ctx, argv[0], -1) }

func cmdIncrBy(ctx *Context, argv [][]byte) resp.Value {
	delta, ok := store.ParseInt64(argv[1])
	if !ok {
		return resp.NewError("ERR value is not an integer or out of range")
	}
	return incrByReply(ctx, argv[0], delta)
}

func cmdDecrBy(ctx *Context, argv [][]byte) resp.Value {
	delta, ok := store.ParseInt64(argv[1])
	if !ok {
		return resp.NewError("ERR value is not an integer or out of range")
	}
	if delta == -9223372036854775808 {
		return resp.NewError("ERR increment or decrement would overflow")
	}
	return incrByReply(ctx, argv[0], -delta)
}

func incrByReply(ctx *Context, key []byte, delta int64) resp.Value {
	n, err := ctx.Keyspace.IncrBy(key, delta)
	if err != nil {
		return resp.NewError(err.Error())
	}
	return resp.NewInteger(n)
}
