package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/hireloop/hrms-ui-api/config"
)

func testCommandContext(t *testing.T, cfg config.AppConfig) *commandContext {
	t.Helper()
	return &commandContext{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
		Config: cfg,
	}
}

func TestCommandsRegistered(t *testing.T) {
	cmds := commands()
	for _, name := range []string{"ping", "purge-sessions", "clear-state"} {
		if _, ok := cmds[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestPurgeSessionsRejectsRedisDriver(t *testing.T) {
	ctx := testCommandContext(t, config.AppConfig{
		Store: config.StoreConfig{Driver: config.StoreDriverRedis},
	})

	if err := runPurgeSessions(ctx, nil); err == nil {
		t.Fatal("expected error for redis driver")
	}
}

func TestClearStateRequiresConfirmation(t *testing.T) {
	ctx := testCommandContext(t, config.AppConfig{
		Store: config.StoreConfig{Driver: config.StoreDriverSQLite},
	})

	if err := runClearState(ctx, nil); err == nil {
		t.Fatal("expected error without -yes")
	}
}
