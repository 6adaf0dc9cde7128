package testutil

import (
	"context"

	"github.com/adspacehq/adspace/internal/types"
)

// SetupContext creates a context with the default user and a fresh request ID
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}
