package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Cancellation is the normal shutdown path; only report real errors.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "kambel:", err)
		}
		os.Exit(1)
	}
}
