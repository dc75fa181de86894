// go_tutor is a learning assistant MCP server and CLI.
//
// Finds and ranks YouTube tutorials for a learning request, generates
// learning roadmaps and runs a canned chat. "go_tutor serve" exposes the
// features as MCP tools over HTTP or stdio.
package main

import "github.com/anatolykoptev/go_tutor/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
