// Command eve-flipper is the desktop shell for the EVE Flipper backend.
//
// On launch it locates the co-located eve-flipper-backend executable,
// starts it bound to port 13370, and stays up until the backend exits.
// Fatal startup failures surface as a native error dialog on Windows or
// a labeled stderr line elsewhere, followed by exit status 1.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/eveflipper/launcher"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	os.Exit(launcher.Run(context.Background(), launcher.WithLogger(log)))
}
