package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/malusev998/privat-rates/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(&cmd.Config{Ctx: ctx})

	stop()

	if err != nil {
		message, code := cmd.Diagnose(err)
		fmt.Println(message)
		os.Exit(code)
	}
}
