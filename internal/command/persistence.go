/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/command/persistence.go
*/
package command

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/mrdb/internal/resp"
)

func cmdSave(ctx *Context, argv [][]byte) resp.Value {
	path, errVal := resolvePath(ctx, argv, "TO")
	if errVal != nil {
		return *errVal
	}
	if err := ctx.Save(path, ctx.Keyspace); err != nil {
		return resp.NewError(fmt.Sprintf("ERR save failed: %s", err))
	}
	return resp.NewSimpleString("OK")
}

func cmdLoad(ctx *Context, argv [][]byte) resp.Value {
	path, errVal := resolvePath(ctx, argv, "FROM")
	if errVal != nil {
		return *errVal
	}
	if err := ctx.Load(path, ctx.Keyspace); err != nil {
		return resp.NewError(fmt.Sprintf("ERR load failed: %s", err))
	}
	return resp.NewSimpleString("OK")
}

// resolvePath implements the shared SAVE/LOAD argument grammar: either no
// arguments (use the default dump path) or exactly `<keyword> <path>`.
func resolvePath(ctx *Context, argv [][]byte, keyword string) (string, *resp.Value) {
	switch len(argv) {
	case 0:
		return ctx.DefaultDumpPath, nil
	case 2:
		if strings.ToUpper(string(argv[0])) != keyword {
			errv := resp.NewError("ERR syntax error")
			return "", &errv
		}
		return string(argv[1]), nil
	default:
		errv := resp.NewError("ERR syntax error")
		return "", &errv
	}
}
