package cmd

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	"github.com/dayflowhq/dayflow/internal/config"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/log"
	"github.com/dayflowhq/dayflow/internal/session"
)

// App bundles the wired client pieces every command needs.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Client  *api.Client
	Session *session.Service
}

var (
	appOnce sync.Once
	appInst *App
	appErr  error
)

// tokenFunc adapts a closure to api.TokenSource so the client can be
// built before the session service that feeds it.
type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

// routePrinter shows where a session change lands the user. The CLI has
// no pages to switch, so navigation is a printed breadcrumb.
type routePrinter struct{}

var routeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func (routePrinter) Navigate(route string) {
	fmt.Println(routeStyle.Render("→ " + route))
}

// getApp wires config, logger, API client, and session service once per
// process.
func getApp() (*App, error) {
	appOnce.Do(func() {
		appInst, appErr = buildApp()
	})
	return appInst, appErr
}

func buildApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCfg := log.DefaultConfig()
	if cfg.Logging.Level != "" {
		logCfg.Level = log.ParseLevel(cfg.Logging.Level)
	}
	if cfg.Logging.Format == "json" {
		logCfg.Format = log.FormatJSON
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	sessionDir, err := config.SessionDir()
	if err != nil {
		return nil, err
	}
	storage, err := session.NewFileStorage(sessionDir)
	if err != nil {
		return nil, err
	}

	var svc *session.Service
	client := api.NewClient(cfg.API.URL,
		api.WithTokenSource(tokenFunc(func() string {
			if svc == nil {
				return ""
			}
			return svc.Token()
		})),
		api.WithLogger(logger),
	)

	svc = session.NewService(client, storage, routePrinter{}, session.WithLogger(logger))
	client.OnAuthExpired(svc.HandleAuthExpired)
	svc.Init()

	return &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Session: svc,
	}, nil
}

// requireRole gates a command on the route guard. The redirect target
// tells the user where they do belong instead.
func (a *App) requireRole(need authz.Role) error {
	sess := a.Session.Current()
	var have authz.Role
	if sess != nil {
		have = sess.Role
	}

	decision := authz.Decide(sess != nil, have, need)
	if decision.Allowed() {
		return nil
	}

	if decision.Target == authz.LoginRoute {
		return dferrors.NewNotLoggedInError()
	}
	return dferrors.New(dferrors.ErrCodeRoleDenied,
		fmt.Sprintf("this command needs the %s role, you are %s", need, have)).
		WithSuggestion("Your commands live under " + decision.Target)
}
