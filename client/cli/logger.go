package cli

import (
	"context"

	"github.com/spf13/cobra"

	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LoggerContextKey is the context key the escrowctl logger is stored under.
const LoggerContextKey = sdk.ContextKey("escrowctl.logger")

// WithLogger returns a copy of ctx that carries logger to the escrow commands.
func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// GetLogger returns the logger set on the command context, or a no-op logger.
func GetLogger(cmd *cobra.Command) log.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if logger, ok := ctx.Value(LoggerContextKey).(log.Logger); ok {
			return logger
		}
	}

	return log.NewNopLogger()
}
