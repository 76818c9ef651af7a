package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/config"
)

// dashboardApp wires an App at a fake backend where every endpoint
// answers 200 `{}` except those listed in failing, which answer 500
// with the given message.
func dashboardApp(t *testing.T, failing map[string]string) *App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if msg, ok := failing[r.URL.Path]; ok {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"` + msg + `"}`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	return &App{
		Config: config.Default(),
		Client: api.NewClient(srv.URL, api.WithTokenSource(api.StaticToken("tok"))),
	}
}

func TestEmployeeDashboardFailsWhenAnyFetchFails(t *testing.T) {
	app := dashboardApp(t, map[string]string{
		"/leave/my-leaves": "leave service down",
	})

	err := renderEmployeeDashboard(context.Background(), app)
	if err == nil {
		t.Fatal("expected the render to fail when one fetch fails")
	}
	if !strings.Contains(err.Error(), "leave service down") {
		t.Errorf("error should carry the server message, got %q", err)
	}
}

func TestEmployeeDashboardRendersWhenAllFetchesSucceed(t *testing.T) {
	app := dashboardApp(t, nil)

	if err := renderEmployeeDashboard(context.Background(), app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestManagerDashboardFailsWhenAnyFetchFails(t *testing.T) {
	app := dashboardApp(t, map[string]string{
		"/timesheet/manager/pending": "timesheets unavailable",
	})

	err := renderManagerDashboard(context.Background(), app)
	if err == nil {
		t.Fatal("expected the render to fail when one fetch fails")
	}
	if !strings.Contains(err.Error(), "timesheets unavailable") {
		t.Errorf("error should carry the server message, got %q", err)
	}
}

func TestAdminDashboardFailsWhenAnyFetchFails(t *testing.T) {
	app := dashboardApp(t, map[string]string{
		"/admin/dashboard/stats": "stats unavailable",
	})

	err := renderAdminDashboard(context.Background(), app)
	if err == nil {
		t.Fatal("expected the render to fail when one fetch fails")
	}
	if !strings.Contains(err.Error(), "stats unavailable") {
		t.Errorf("error should carry the server message, got %q", err)
	}
}
