package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/domain/model"
	"github.com/hireloop/hrms-ui-api/internal/ports"
	"github.com/hireloop/hrms-ui-api/internal/router"
	"github.com/hireloop/hrms-ui-api/internal/service"
	"github.com/hireloop/hrms-ui-api/internal/state"
)

// navigatorDeps groups what route initializers close over.
type navigatorDeps struct {
	Gate     router.Gate
	State    *state.Store
	Logger   *slog.Logger
	Services *ServiceContainer
}

// fetch runs one backend call for a page, flips its loading flag, and
// stashes the raw payload under records.<key>.
func (d navigatorDeps) fetch(ctx context.Context, key string, call func(context.Context) (ports.Result, error)) error {
	d.State.Set("loading."+key, true)
	defer d.State.Set("loading."+key, false)

	res, err := call(ctx)
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("load %s: %s", key, res.Error)
	}
	d.State.Set("records."+key, res.Data)
	return nil
}

// buildNavigator registers the route table. Literal routes sit before
// their parameterized siblings; registration order is the tie-break
// among parameterized patterns.
func buildNavigator(deps navigatorDeps) *router.Router {
	nav := router.New(router.Options{
		Logger: deps.Logger,
		Gate:   deps.Gate,
		State:  deps.State,
	})

	nav.Register(
		router.Route{Pattern: "/login", Title: "Login"},
		router.Route{
			Pattern: "/dashboard", Title: "Dashboard",
			RequiresAuth: true,
			Init:         initDashboard(deps),
		},

		router.Route{
			Pattern: "/requirements", Title: "Requirements",
			RequiresAuth: true,
			Init:         initRequirements(deps),
		},
		router.Route{
			Pattern: "/requirements/new", Title: "Raise Requirement",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermRequirementCreate},
			Init:         initRequirementForm(deps),
		},
		router.Route{
			Pattern: "/requirements/:id", Title: "Requirement",
			RequiresAuth: true,
			Init:         initRequirementDetail(deps),
		},
		router.Route{
			Pattern: "/job-postings", Title: "Job Postings",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermJobPostingView},
			Init:         initJobPostings(deps),
		},

		router.Route{
			Pattern: "/candidates", Title: "Candidates",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermCandidateView},
			Init:         initCandidates(deps),
		},
		router.Route{
			Pattern: "/candidates/add", Title: "Add Candidate",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermCandidateAdd},
		},
		router.Route{
			Pattern: "/candidates/:id", Title: "Candidate",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermCandidateView},
			Init:         initCandidateDetail(deps),
		},

		router.Route{
			Pattern: "/call-screening", Title: "Call Screening",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermCallScreening, domainauth.PermCallLogView},
			Init:         initCallScreening(deps),
		},

		router.Route{
			Pattern: "/interviews", Title: "Interviews",
			RequiresAuth: true,
			Init:         initInterviews(deps),
		},
		router.Route{
			Pattern: "/interviews/today", Title: "Today's Interviews",
			RequiresAuth: true,
			Init:         initTodaysInterviews(deps),
		},

		router.Route{
			Pattern: "/tests", Title: "Tests",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermTestViewResults, domainauth.PermTestGenerateLink},
		},
		// Token-gated assessment page; candidates are not logged in.
		router.Route{
			Pattern: "/test/:token", Title: "Assessment",
			Init: initAssessment(deps),
		},

		router.Route{
			Pattern: "/admin", Title: "Admin",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleAdmin},
			Init:         initAdmin(deps),
		},
		router.Route{
			Pattern: "/admin/pending", Title: "Pending Review",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleAdmin},
			Permissions:  []domainauth.Permission{domainauth.PermAdminDecision},
			Init:         initAdminPending(deps),
		},
		router.Route{
			Pattern: "/admin/audit-log", Title: "Audit Log",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleAdmin},
			Permissions:  []domainauth.Permission{domainauth.PermViewAuditLog},
			Init:         initAuditLog(deps),
		},
		router.Route{
			Pattern: "/admin/rejection-log", Title: "Rejection Log",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleAdmin},
			Permissions:  []domainauth.Permission{domainauth.PermViewRejectionLog},
			Init:         initRejectionLog(deps),
		},

		router.Route{
			Pattern: "/owner", Title: "Owner Review",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleOwner},
			Init:         initOwnerQueue(deps),
		},
		router.Route{
			Pattern: "/owner/final-interviews", Title: "Final Interviews",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleOwner},
			Init:         initFinalInterviewQueue(deps),
		},

		router.Route{
			Pattern: "/onboarding", Title: "Onboarding",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermOnboardingManage},
			Init:         initOnboarding(deps),
		},
		router.Route{
			Pattern: "/onboarding/:id", Title: "Onboarding Status",
			RequiresAuth: true,
			Permissions:  []domainauth.Permission{domainauth.PermOnboardingManage},
			Init:         initOnboardingDetail(deps),
		},

		router.Route{
			Pattern: "/settings", Title: "Settings",
			RequiresAuth: true,
			Roles:        []domainauth.Role{domainauth.RoleAdmin},
			Permissions:  []domainauth.Permission{domainauth.PermAdminSettings},
			Init:         initSettings(deps),
		},
	)

	return nav
}

func initDashboard(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		d.State.Set("loading.dashboard", true)
		defer d.State.Set("loading.dashboard", false)

		overview, err := d.Services.Dashboard.Overview(ctx)
		if err != nil {
			return err
		}
		d.State.Set("dashboard.overview", overview)
		return nil
	}
}

func initRequirements(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "requirements", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Requirements.List(ctx, model.RequirementFilters{})
		})
	}
}

func initRequirementForm(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		// The raise form offers templates per job role.
		return d.fetch(ctx, "jobTemplates", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Requirements.ListTemplates(ctx)
		})
	}
}

func initRequirementDetail(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, nav *router.Navigation) error {
		return d.fetch(ctx, "requirementDetail", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Requirements.Get(ctx, nav.Params["id"])
		})
	}
}

func initJobPostings(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "jobPostings", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Requirements.ListPostings(ctx)
		})
	}
}

func initCandidates(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "candidates", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Candidates.List(ctx, model.CandidateFilters{})
		})
	}
}

func initCandidateDetail(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, nav *router.Navigation) error {
		return d.fetch(ctx, "candidateDetail", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Candidates.Get(ctx, nav.Params["id"])
		})
	}
}

func initCallScreening(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "callLogs", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Calls.AllLogs(ctx, service.AllLogsInput{})
		})
	}
}

func initInterviews(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "interviews", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Interviews.List(ctx, model.InterviewFilters{})
		})
	}
}

func initTodaysInterviews(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "todaysInterviews", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Interviews.List(ctx, model.InterviewFilters{
				Date: time.Now().Format("2006-01-02"),
			})
		})
	}
}

func initAssessment(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, nav *router.Navigation) error {
		return d.fetch(ctx, "assessment", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Assessments.Questions(ctx, nav.Params["token"])
		})
	}
}

func initAdmin(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "systemStats", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Admin.SystemStats(ctx)
		})
	}
}

func initAdminPending(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "pendingReview", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Admin.PendingReview(ctx)
		})
	}
}

func initAuditLog(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "auditLog", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Admin.AuditLog(ctx, service.LogQueryInput{})
		})
	}
}

func initRejectionLog(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "rejectionLog", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Admin.RejectionLog(ctx, service.LogQueryInput{})
		})
	}
}

func initOwnerQueue(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "ownerQueue", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Owner.Queue(ctx, model.CandidateFilters{})
		})
	}
}

func initFinalInterviewQueue(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "finalInterviewQueue", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Owner.FinalInterviewQueue(ctx, model.CandidateFilters{})
		})
	}
}

func initOnboarding(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		return d.fetch(ctx, "selectedCandidates", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Onboarding.SelectedCandidates(ctx, model.CandidateFilters{})
		})
	}
}

func initOnboardingDetail(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, nav *router.Navigation) error {
		return d.fetch(ctx, "onboardingStatus", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Onboarding.Status(ctx, nav.Params["id"])
		})
	}
}

func initSettings(d navigatorDeps) router.InitFunc {
	return func(ctx context.Context, _ *router.Navigation) error {
		// User management lives on the settings page.
		return d.fetch(ctx, "users", func(ctx context.Context) (ports.Result, error) {
			return d.Services.Users.List(ctx)
		})
	}
}
