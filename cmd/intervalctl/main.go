// Command intervalctl builds integer intervals and evaluates them with the
// parallel batch iterator.
package main

import (
	"context"
	"os"
	"os/signal"

	jww "github.com/spf13/jwalterweatherman"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		jww.ERROR.Printf("intervalctl exiting with error: %s", err)
		stop()
		os.Exit(1)
	}
}
