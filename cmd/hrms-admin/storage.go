package main

import (
	"errors"
	"flag"

	"github.com/hireloop/hrms-ui-api/config"
	"github.com/hireloop/hrms-ui-api/internal/adapters/localstore"
	"github.com/hireloop/hrms-ui-api/internal/bootstrap"
)

// runPurgeSessions deletes expired sessions. Redis expires sessions by
// TTL, so this only applies to the sqlite driver.
func runPurgeSessions(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("purge-sessions", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if ctx.Config.Store.Driver != config.StoreDriverSQLite {
		return errors.New("purge-sessions only applies to STORE_DRIVER=sqlite; redis sessions expire via TTL")
	}

	store, err := localstore.Open(ctx.Config.Store.SQLitePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			ctx.Logger.ErrorContext(ctx.Ctx, "close store failed", "error", cerr)
		}
	}()

	purged, err := store.PurgeExpiredSessions(ctx.Ctx)
	if err != nil {
		return err
	}

	ctx.Logger.InfoContext(ctx.Ctx, "purged expired sessions",
		"count", purged,
		"path", ctx.Config.Store.SQLitePath)
	return nil
}

// runClearState drops every persisted UI state key for the configured
// driver. Requires -yes since it discards user preferences.
func runClearState(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("clear-state", flag.ContinueOnError)
	confirmed := fs.Bool("yes", false, "confirm dropping all persisted UI state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirmed {
		return errors.New("refusing to clear state without -yes")
	}

	storage, err := bootstrap.OpenStorage(bootstrap.StorageConfig{
		Store:  ctx.Config.Store,
		Redis:  ctx.Config.Redis,
		Logger: ctx.Logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			ctx.Logger.ErrorContext(ctx.Ctx, "close storage failed", "error", cerr)
		}
	}()

	if err := storage.State.Clear(ctx.Ctx); err != nil {
		return err
	}

	ctx.Logger.InfoContext(ctx.Ctx, "persisted UI state cleared", "driver", ctx.Config.Store.Driver)
	return nil
}
