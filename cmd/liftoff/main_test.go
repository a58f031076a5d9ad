package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const launchesJSON = `[
  {"flight_number": 1, "mission_name": "FalconSat", "launch_date_utc": "2006-03-24T22:30:00.000Z", "launch_success": false, "rocket": {"rocket_name": "Falcon 1"}},
  {"flight_number": 6, "mission_name": "Falcon 9 Test Flight", "launch_date_utc": "2010-06-04T18:45:00.000Z", "launch_success": true, "rocket": {"rocket_name": "Falcon 9"}},
  {"flight_number": 7, "mission_name": "COTS 1", "launch_date_utc": "2010-12-08T15:43:00.000Z", "launch_success": true, "rocket": {"rocket_name": "Falcon 9"}}
]`

func executeList(t *testing.T, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(launchesJSON))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := fmt.Sprintf("log_file = %q\n", filepath.Join(dir, "liftoff.log"))
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"list", "--config", cfgPath, "--endpoint", srv.URL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand_StatusFilter(t *testing.T) {
	out, err := executeList(t, "--status", "success")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Falcon 9 Test Flight") || !strings.Contains(out, "COTS 1") {
		t.Fatalf("successful launches missing:\n%s", out)
	}
	if strings.Contains(out, "FalconSat") {
		t.Fatalf("failed launch listed under --status success:\n%s", out)
	}
}

func TestListCommand_SearchMarkdown(t *testing.T) {
	out, err := executeList(t, "--search", "FAL", "--format", "markdown")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "| ") || !strings.Contains(out, "2 matches") {
		t.Fatalf("markdown search output wrong:\n%s", out)
	}
}

func TestListCommand_RejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--status", "maybe"},
		{"--window", "decade"},
		{"--format", "csv"},
	} {
		if _, err := executeList(t, args...); err == nil {
			t.Fatalf("list %v returned nil error", args)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("--version output = %q, want %q", out.String(), version)
	}
}
