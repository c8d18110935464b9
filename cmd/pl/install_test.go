package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallByIDSuccess(t *testing.T) {
	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{requestDoc("SUCCESS")},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, "")

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--no-prompt"}, strings.NewReader(""), &out, &errOut)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), "Successfully installed package ["+testVersionID+"]") {
		t.Errorf("stdout = %q", out.String())
	}
	if len(server.createBodies) != 1 {
		t.Fatalf("create calls = %d, want 1", len(server.createBodies))
	}
	body := server.createBodies[0]
	if body["SubscriberPackageVersionKey"] != testVersionID {
		t.Errorf("version key = %v", body["SubscriberPackageVersionKey"])
	}
	if body["SecurityType"] != "full" {
		t.Errorf("SecurityType = %v, want full", body["SecurityType"])
	}
	if body["NameConflictResolution"] != "Block" || body["PackageInstallSource"] != "U" {
		t.Errorf("fixed fields = %v / %v", body["NameConflictResolution"], body["PackageInstallSource"])
	}
	for _, auth := range server.authHeaders {
		if auth != "Bearer t0ken" {
			t.Errorf("Authorization = %q", auth)
		}
	}
}

func TestInstallResolvesAliasFromProjectFile(t *testing.T) {
	workDir := t.TempDir()
	project := "[aliases]\nmyapp = \"" + testVersionID + "\"\n"
	if err := os.WriteFile(filepath.Join(workDir, "package-layer.toml"), []byte(project), 0o644); err != nil {
		t.Fatalf("write project file: %v", err)
	}
	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{requestDoc("SUCCESS")},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, workDir)

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--package", "myapp", "--no-prompt"}, strings.NewReader(""), &out, &errOut)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if server.createBodies[0]["SubscriberPackageVersionKey"] != testVersionID {
		t.Errorf("version key = %v", server.createBodies[0]["SubscriberPackageVersionKey"])
	}
}

func TestInstallRejectsConflictingIdentifierFlags(t *testing.T) {
	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{requestDoc("SUCCESS")},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, "")

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--package", "myapp"}, strings.NewReader(""), &out, &errOut)
	if err == nil || !strings.Contains(err.Error(), "cannot be used together") {
		t.Fatalf("error = %v", err)
	}
	if len(server.createBodies) != 0 {
		t.Errorf("create calls = %d, want 0", len(server.createBodies))
	}
}

func TestInstallExternalSitesPrompt(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"granted", "yes\n", true},
		{"declined", "no\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version := publishedVersionDoc()
			version["TrustedSites"] = []string{"https://api.example.com"}
			server := &orgServer{
				version:  version,
				requests: []map[string]any{requestDoc("SUCCESS")},
				createID: testRequestID,
			}
			setupOrgEnv(t, server, "")

			var out, errOut bytes.Buffer
			err := execute([]string{"pl", "install", "--id", testVersionID}, strings.NewReader(tt.answer), &out, &errOut)
			if err != nil {
				t.Fatalf("execute error: %v", err)
			}
			if !strings.Contains(out.String(), "https://api.example.com") {
				t.Errorf("prompt missing from output: %q", out.String())
			}
			if server.createBodies[0]["EnableExternalSites"] != tt.want {
				t.Errorf("EnableExternalSites = %v, want %v", server.createBodies[0]["EnableExternalSites"], tt.want)
			}
		})
	}
}

func TestInstallDeclinedDeleteUpgradeAborts(t *testing.T) {
	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{requestDoc("SUCCESS")},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, "")

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--upgrade-type", "Delete"}, strings.NewReader("no\n"), &out, &errOut)
	if err == nil || !strings.Contains(err.Error(), "canceled") {
		t.Fatalf("error = %v", err)
	}
	if len(server.createBodies) != 0 {
		t.Errorf("create calls = %d, want 0", len(server.createBodies))
	}
}

func TestInstallKeyFromStdin(t *testing.T) {
	origTerm := isStdinTerminalFunc
	defer func() { isStdinTerminalFunc = origTerm }()
	isStdinTerminalFunc = func() bool { return false }

	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{requestDoc("SUCCESS")},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, "")

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--installation-key", "-", "--no-prompt"}, strings.NewReader("sekret99\n"), &out, &errOut)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), "Installation key:") {
		t.Errorf("missing key prompt in %q", out.String())
	}
	if got := server.versionQueries[0].Get("installationKey"); got != "sekret99" {
		t.Errorf("installationKey query = %q", got)
	}
	if server.createBodies[0]["InstallationKey"] != "sekret99" {
		t.Errorf("payload InstallationKey = %v", server.createBodies[0]["InstallationKey"])
	}
}

func TestInstallPendingPointsAtReport(t *testing.T) {
	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{requestDoc("IN_PROGRESS")},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, "")

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--no-prompt"}, strings.NewReader(""), &out, &errOut)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), "pl report --request-id "+testRequestID) {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestInstallRemoteErrorsAreNumbered(t *testing.T) {
	failed := requestDoc("ERROR")
	failed["Errors"] = []map[string]any{{"Message": "bad field"}, {"Message": "missing perm"}}
	server := &orgServer{
		version:  publishedVersionDoc(),
		requests: []map[string]any{failed},
		createID: testRequestID,
	}
	setupOrgEnv(t, server, "")

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--no-prompt"}, strings.NewReader(""), &out, &errOut)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Installation errors: \n1) bad field\n2) missing perm") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestInstallRejectsLowAPIVersion(t *testing.T) {
	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, "package-layer.toml"), []byte("api_version = 20\n"), 0o644); err != nil {
		t.Fatalf("write project file: %v", err)
	}
	server := &orgServer{version: publishedVersionDoc(), createID: testRequestID, requests: []map[string]any{requestDoc("SUCCESS")}}
	setupOrgEnv(t, server, workDir)

	var out, errOut bytes.Buffer
	err := execute([]string{"pl", "install", "--id", testVersionID, "--no-prompt"}, strings.NewReader(""), &out, &errOut)
	if err == nil || !strings.Contains(err.Error(), "api_version 20 is not supported") {
		t.Fatalf("error = %v", err)
	}
}
