package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/hireloop/hrms-ui-api/internal/adapters/backend"
	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// runPing checks backend reachability with a single anonymous
// AUTH_VALIDATE call. A structured refusal still proves the endpoint is
// up; only transport failures count as down.
func runPing(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 5*time.Second, "per-attempt timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client := backend.NewClient(backend.Options{
		BaseURL:       ctx.Config.Backend.URL,
		Timeout:       *timeout,
		RetryAttempts: 1,
		Logger:        ctx.Logger,
	})

	start := time.Now()
	res, err := client.Call(ctx.Ctx, action.AuthValidate, nil, nil)
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Round(time.Millisecond)

	switch res.Code {
	case ports.CodeTimeout, ports.CodeNetworkError:
		return fmt.Errorf("backend unreachable at %s: %s (%s)", ctx.Config.Backend.URL, res.Code, res.Error)
	}

	ctx.Logger.InfoContext(ctx.Ctx, "backend reachable",
		"url", ctx.Config.Backend.URL,
		"elapsed", elapsed.String(),
		"success", res.Success,
		"code", res.Code)
	return nil
}
