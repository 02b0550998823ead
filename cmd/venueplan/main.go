package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
