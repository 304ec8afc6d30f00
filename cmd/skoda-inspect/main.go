package main

import (
	"context"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/carconnectivity/connector-skoda/cmd/skoda-inspect/app"
)

func main() {
	cmd := app.NewInspectCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
