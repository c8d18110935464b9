// Package org provides the authenticated connection used to create and
// retrieve resources in the target org's REST API.
package org

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/conn-castle/package-layer/internal/messages"
)

// Resource type names understood by the org API.
const (
	// ResourceInstallRequest is the server-side install request resource.
	ResourceInstallRequest = "PackageInstallRequest"
	// ResourceSubscriberVersion is the read-only subscriber package version resource.
	ResourceSubscriberVersion = "SubscriberPackageVersion"
)

const userAgent = "package-layer"

// maxErrorBody caps how much of an error response body is read.
const maxErrorBody = 64 * 1024

// Client creates and retrieves remote resources. Implementations must be
// safe for sequential reuse within one command invocation; nothing here is
// shared across invocations.
type Client interface {
	// Create submits payload as a new resource and returns the id the org
	// assigned. A successful call may still return an empty id; callers
	// decide whether that is fatal.
	Create(ctx context.Context, resource string, payload any) (string, error)
	// Retrieve fetches the resource with the given id into out.
	// params carries optional query parameters such as the installation key.
	Retrieve(ctx context.Context, resource string, id string, params url.Values, out any) error
}

// Connection is a Client over the org REST API.
type Connection struct {
	instanceURL string
	accessToken string
	apiVersion  int
	httpClient  *http.Client
}

// NewConnection builds a Connection from a credentials entry and API version.
func NewConnection(creds OrgCredentials, apiVersion int) *Connection {
	return &Connection{
		instanceURL: strings.TrimRight(creds.InstanceURL, "/"),
		accessToken: creds.AccessToken,
		apiVersion:  apiVersion,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// APIError is one structured error entry in an org API error response.
type APIError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// RemoteError is a non-2xx response from the org API.
type RemoteError struct {
	StatusCode int
	Status     string
	Errors     []APIError
}

func (e *RemoteError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("org API error: %s", e.Status)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		if apiErr.ErrorCode != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", apiErr.Message, apiErr.ErrorCode))
			continue
		}
		parts = append(parts, apiErr.Message)
	}
	return fmt.Sprintf("org API error: %s", strings.Join(parts, "; "))
}

// IsNotFound reports whether err is a RemoteError for a missing resource.
func IsNotFound(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound
}

type createResponse struct {
	ID string `json:"id"`
}

// Create implements Client.
func (c *Connection) Create(ctx context.Context, resource string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf(messages.OrgEncodePayloadErrFmt, resource, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resourceURL(resource, "", nil), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf(messages.OrgCreateRequestErrFmt, resource, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf(messages.OrgRequestErrFmt, http.MethodPost, resource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", errorFromResponse(resp)
	}

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf(messages.OrgDecodeResponseErrFmt, resource, err)
	}
	return created.ID, nil
}

// Retrieve implements Client.
func (c *Connection) Retrieve(ctx context.Context, resource string, id string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL(resource, id, params), nil)
	if err != nil {
		return fmt.Errorf(messages.OrgCreateRequestErrFmt, resource, err)
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf(messages.OrgRequestErrFmt, http.MethodGet, resource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(messages.OrgDecodeResponseErrFmt, resource, err)
	}
	return nil
}

func (c *Connection) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("User-Agent", userAgent)
}

func (c *Connection) resourceURL(resource string, id string, params url.Values) string {
	u := fmt.Sprintf("%s/api/v%d/resources/%s", c.instanceURL, c.apiVersion, resource)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// errorFromResponse drains resp into a RemoteError, decoding structured
// API error entries when the body carries them.
func errorFromResponse(resp *http.Response) error {
	remote := &RemoteError{StatusCode: resp.StatusCode, Status: resp.Status}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return remote
	}
	var apiErrs []APIError
	if err := json.Unmarshal(body, &apiErrs); err == nil {
		remote.Errors = apiErrs
	}
	return remote
}
