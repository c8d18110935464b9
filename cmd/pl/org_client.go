package main

import (
	"github.com/conn-castle/package-layer/internal/config"
	"github.com/conn-castle/package-layer/internal/org"
)

var credentialsPathFunc = org.DefaultCredentialsPath

// newOrgClient is a seam so command tests can script the org API.
var newOrgClient = func(entry org.OrgCredentials, apiVersion int) org.Client {
	return org.NewConnection(entry, apiVersion)
}

// loadProjectConfig finds the project file by walking up from the working
// directory. Commands run with defaults when no project file exists.
func loadProjectConfig() (*config.Config, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	path, found, err := config.FindFile(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return config.Default(), nil
	}
	return config.Load(path)
}

// connectTarget resolves the credentials entry for orgName and returns a
// client for it plus the resolved org name.
func connectTarget(orgName string, apiVersion int) (org.Client, string, error) {
	path, err := credentialsPathFunc()
	if err != nil {
		return nil, "", err
	}
	creds, err := org.LoadCredentials(path)
	if err != nil {
		return nil, "", err
	}
	entry, name, err := creds.Select(orgName, path)
	if err != nil {
		return nil, "", err
	}
	return newOrgClient(entry, apiVersion), name, nil
}
