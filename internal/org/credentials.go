package org

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/package-layer/internal/messages"
)

// CredentialsFileName is the credentials file name under the config dir.
const CredentialsFileName = "credentials.toml"

// Credentials is the parsed credentials file. Entries are written by the
// org's auth tooling; this CLI only reads them.
type Credentials struct {
	DefaultOrg string                    `toml:"default_org"`
	Orgs       map[string]OrgCredentials `toml:"orgs"`
}

// OrgCredentials identifies one authenticated org.
type OrgCredentials struct {
	InstanceURL string `toml:"instance_url"`
	AccessToken string `toml:"access_token"`
}

// DefaultCredentialsPath returns the credentials file path under the user's home dir.
func DefaultCredentialsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.CredsResolveHomeErrFmt, err)
	}
	return filepath.Join(home, ".package-layer", CredentialsFileName), nil
}

// LoadCredentials reads and decodes the credentials file at path.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.CredsMissingFileFmt, path, err)
	}
	var creds Credentials
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&creds); err != nil {
		return nil, fmt.Errorf(messages.CredsInvalidFileFmt, path, err)
	}
	return &creds, nil
}

// Select returns the entry for orgName, falling back to default_org when
// orgName is empty. It returns the resolved org name alongside the entry.
// path names the credentials file in error messages.
func (c *Credentials) Select(orgName string, path string) (OrgCredentials, string, error) {
	name := orgName
	if name == "" {
		if c.DefaultOrg == "" {
			return OrgCredentials{}, "", fmt.Errorf(messages.CredsNoDefaultOrgFmt, path)
		}
		name = c.DefaultOrg
	}
	entry, ok := c.Orgs[name]
	if !ok {
		return OrgCredentials{}, "", fmt.Errorf(messages.CredsUnknownOrgFmt, name, path)
	}
	if err := entry.validate(name); err != nil {
		return OrgCredentials{}, "", err
	}
	return entry, name, nil
}

func (o OrgCredentials) validate(name string) error {
	if o.InstanceURL == "" {
		return fmt.Errorf(messages.CredsInstanceURLMissing, name)
	}
	parsed, err := url.Parse(o.InstanceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf(messages.CredsInstanceURLBadFmt, name, o.InstanceURL)
	}
	if o.AccessToken == "" {
		return fmt.Errorf(messages.CredsAccessTokenMissing, name)
	}
	return nil
}
