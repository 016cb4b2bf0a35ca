/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/command/connection.go
*/
package command

import "github.com/akashmaji946/mrdb/internal/resp"

func cmdPing(ctx *Context, argv [][]byte) resp.Value {
	if len(argv) == 0 {
		return resp.NewSimpleString("PONG")
	}
	return resp.NewBulk(argv[0])
}
