/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/command/lists.go
*/
package command

import (
	"strings"

	"github.com/akashmaji946/mrdb/internal/resp"
	"github.com/akashmaji946/mrdb/internal/store"
)

func cmdPush(left bool) Handler {
	return func(ctx *Context, argv [][]byte) resp.Value {
		n, err := ctx.Keyspace.Push(argv[0], argv[1:], left)
		if err != nil {
			return resp.NewError(err.Error())
		}
		return resp.NewInteger(n)
	}
}

func cmdLLen(ctx *Context, argv [][]byte) resp.Value {
	n, err := ctx.Keyspace.Len(argv[0])
	if err != nil {
		return resp.NewError(err.Error())
	}
	return resp.NewInteger(n)
}

func cmdLIndex(ctx *Context, argv [][]byte) resp.Value {
	idx, ok := store.ParseInt64(argv[1])
	if !ok {
		return resp.NewError("ERR value is not an integer or out of range")
	}
	v, ok, err := ctx.Keyspace.Index(argv[0], idx)
	if err != nil {
		return resp.NewError(err.Error())
	}
	if !ok {
		return resp.NewNullBulk()
	}
	return resp.NewBulk(v)
}

func cmdLRange(ctx *Context, argv [][]byte) resp.Value {
	start, ok1 := store.ParseInt64(argv[1])
	stop, ok2 := store.ParseInt64(argv[2])
	if !ok1 || !ok2 {
		return resp.NewError("ERR value is not an integer or out of range")
	}
	items, err := ctx.Keyspace.Range(argv[0], start, stop)
	if err != nil {
		return resp.NewError(err.Error())
	}
	vals := make([]resp.Value, len(items))
	for i, it := range items {
		vals[i] = resp.NewBulk(it)
	}
	return resp.NewArray(vals)
}

func cmdLSet(ctx *Context, argv [][]byte) resp.Value {
	idx, ok := store.ParseInt64(argv[1])
	if !ok {
		return resp.NewError("ERR value is not an integer or out of range")
	}
	if err := ctx.Keyspace.Set(argv[0], idx, argv[2]); err != nil {
		return resp.NewError(err.Error())
	}
	return resp.NewSimpleString("OK")
}

func cmdLRem(ctx *Context, argv [][]byte) resp.Value {
	count, ok := store.ParseInt64(argv[1])
	if !ok {
		return resp.NewError("ERR value is not an integer or out of range")
	}
	n, err := ctx.Keyspace.Rem(argv[0], count, argv[2])
	if err != nil {
		return resp.NewError(err.Error())
	}
	return resp.NewInteger(n)
}

func cmdLInsert(ctx *Context, argv [][]byte) resp.Value {
	var before bool
	switch strings.ToUpper(string(argv[1])) {
	case "BEFORE":
		before = true
	case "AFTER":
		before = false
	default:
		return resp.NewError("ERR syntax error")
	}
	n, err := ctx.Keyspace.Insert(argv[0], before, argv[2], argv[3])
	if err != nil {
		return resp.NewError(err.Error())
	}
	return resp.NewInteger(n)
}

func cmdPop(left bool) Handler {
	return func(ctx *Context, argv [][]byte) resp.Value {
		hasCount := len(argv) == 2
		var count int64
		if hasCount {
			n, ok := store.ParseInt64(argv[1])
			if !ok {
				return resp.NewError("ERR value is not an integer or out of range")
			}
			if n <= 0 {
				return resp.NewError("ERR value is out of range, must be positive")
			}
			count = n
		}

		values, keyAbsent, err := ctx.Keyspace.Pop(argv[0], left, hasCount, count)
		if err != nil {
			return resp.NewError(err.Error())
		}

		if !hasCount {
			if keyAbsent || len(values) == 0 {
				return resp.NewNullBulk()
			}
			return resp.NewBulk(values[0])
		}

		if keyAbsent {
			return resp.NewNullArray()
		}
		vals := make([]resp.Value, len(values))
		for i, v := range values {
			vals[i] = resp.NewBulk(v)
		}
		return resp.NewArray(vals)
	}
}
