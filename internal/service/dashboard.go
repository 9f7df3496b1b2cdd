package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

const statsCacheKey = "dashboard:stats"

// DashboardService assembles the dashboard landing data. The three
// widgets are independent backend calls, so Overview fans them out
// concurrently. Stats change slowly and are the most expensive query,
// so they are cached for a short window.
type DashboardService struct {
	backend  ports.Backend
	cache    ports.CacheRepository
	logger   *slog.Logger
	cacheTTL time.Duration
}

// DashboardServiceOptions holds dependencies for NewDashboardService.
// Cache is optional; without one every Overview call hits the backend.
type DashboardServiceOptions struct {
	Backend  ports.Backend
	Cache    ports.CacheRepository
	Logger   *slog.Logger
	CacheTTL time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Backend == nil {
		panic("dashboard service requires a backend")
	}
	if opts.Logger == nil {
		panic("dashboard service requires a logger")
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardService{
		backend:  opts.Backend,
		cache:    opts.Cache,
		logger:   opts.Logger,
		cacheTTL: ttl,
	}
}

// Overview is the aggregated payload behind the dashboard page.
type Overview struct {
	Stats          json.RawMessage `json:"stats"`
	RecentActivity json.RawMessage `json:"recentActivity"`
	PendingActions json.RawMessage `json:"pendingActions"`
}

// Overview fetches stats, recent activity and pending actions in
// parallel. Any widget failing fails the whole call: the page has no
// partial render.
func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := s.stats(gctx)
		if err != nil {
			return err
		}
		out.Stats = data
		return nil
	})
	g.Go(func() error {
		data, err := s.widget(gctx, action.GetRecentActivity)
		if err != nil {
			return err
		}
		out.RecentActivity = data
		return nil
	})
	g.Go(func() error {
		data, err := s.widget(gctx, action.GetPendingActions)
		if err != nil {
			return err
		}
		out.PendingActions = data
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}

// ChartDataInput selects one chart series.
type ChartDataInput struct {
	Chart  string `json:"chart"`
	Period string `json:"period,omitempty"`
}

func (s *DashboardService) ChartData(ctx context.Context, in ChartDataInput) (ports.Result, error) {
	return s.backend.Call(ctx, action.GetChartData, in, nil)
}

func (s *DashboardService) stats(ctx context.Context) (json.RawMessage, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, statsCacheKey)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ports.ErrNotFound) {
			s.logger.Warn("dashboard stats cache read failed", "error", err)
		}
	}
	data, err := s.widget(ctx, action.GetDashboardStats)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, data, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard stats cache write failed", "error", err)
		}
	}
	return data, nil
}

func (s *DashboardService) widget(ctx context.Context, act action.Action) (json.RawMessage, error) {
	res, err := s.backend.Call(ctx, act, nil, nil)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("%s: %s", act, res.Error)
	}
	return res.Data, nil
}
