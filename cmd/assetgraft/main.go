package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/assetgraft/internal/cli"
	apperr "github.com/matzehuels/assetgraft/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		if code := apperr.GetCode(err); code != "" {
			os.Exit(exitCode(code))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}

// exitCode separates bad requests from packages that could not be edited.
func exitCode(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeMalformedExpression:
		return 2
	case apperr.ErrCodeInputNotFound, apperr.ErrCodeCodecParse, apperr.ErrCodeCodecWrite:
		return 3
	}
	return 4
}
