package main

import (
	"context"
	"os"

	"github.com/k-negishi/event-assigner/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cli.Exitf("Error: %v", err)
	}
}
