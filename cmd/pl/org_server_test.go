package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const (
	testVersionID = "04tB00000009T2zIAE"
	testRequestID = "0HfB00000004CFKKA2"
)

// orgServer fakes the org REST API for command tests. Responses are static
// JSON documents; requests are recorded for assertions.
type orgServer struct {
	mu sync.Mutex

	version  map[string]any
	requests []map[string]any
	createID string

	createBodies   []map[string]any
	versionQueries []url.Values
	authHeaders    []string
	requestGets    int
}

func (s *orgServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/resources/PackageInstallRequest"):
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.createBodies = append(s.createBodies, body)
		writeJSON(w, map[string]any{"id": s.createID})
	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/resources/SubscriberPackageVersion/"):
		s.versionQueries = append(s.versionQueries, r.URL.Query())
		writeJSON(w, s.version)
	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/resources/PackageInstallRequest/"):
		idx := s.requestGets
		if idx >= len(s.requests) {
			idx = len(s.requests) - 1
		}
		s.requestGets++
		writeJSON(w, s.requests[idx])
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, doc any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(doc)
}

func publishedVersionDoc() map[string]any {
	return map[string]any{
		"Id":            testVersionID,
		"ContainerType": "Unlocked",
		"Published":     true,
	}
}

func requestDoc(status string) map[string]any {
	return map[string]any{
		"Id":                          testRequestID,
		"Status":                      status,
		"SubscriberPackageVersionKey": testVersionID,
	}
}

// setupOrgEnv points the CLI at server via a temp credentials file and pins
// the working directory to workDir (a fresh temp dir when empty).
func setupOrgEnv(t *testing.T, server *orgServer, workDir string) {
	t.Helper()
	httpServer := httptest.NewServer(server)
	t.Cleanup(httpServer.Close)

	credsPath := filepath.Join(t.TempDir(), "credentials.toml")
	contents := fmt.Sprintf("default_org = \"dev\"\n\n[orgs.dev]\ninstance_url = %q\naccess_token = \"t0ken\"\n", httpServer.URL)
	if err := os.WriteFile(credsPath, []byte(contents), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}
	origCredsPath := credentialsPathFunc
	credentialsPathFunc = func() (string, error) { return credsPath, nil }
	t.Cleanup(func() { credentialsPathFunc = origCredsPath })

	if workDir == "" {
		workDir = t.TempDir()
	}
	origGetwd := getwd
	getwd = func() (string, error) { return workDir, nil }
	t.Cleanup(func() { getwd = origGetwd })
}
