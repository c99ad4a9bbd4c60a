// Command shellit evaluates calculator expressions and serves them to
// terminals and MCP clients.
package main

import (
	"os"

	"github.com/custodia-labs/shellit/internal/adapters/driving/cli"
	"github.com/custodia-labs/shellit/internal/app"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(app.Bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
