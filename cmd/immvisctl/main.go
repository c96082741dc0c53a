package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/immvis/immvis-go/internal/app/cli"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCmd(nil).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
