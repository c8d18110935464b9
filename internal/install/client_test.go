package install

import (
	"context"
	"net/url"
	"time"

	"github.com/conn-castle/package-layer/internal/org"
)

// versionStep scripts one SubscriberPackageVersion retrieve.
type versionStep struct {
	version SubscriberPackageVersion
	err     error
}

// requestStep scripts one PackageInstallRequest retrieve.
type requestStep struct {
	request InstallRequest
	err     error
}

// fakeClient scripts the org client. Steps are consumed in order; the last
// step repeats once its predecessors are spent.
type fakeClient struct {
	createID  string
	createErr error

	creates       []RequestPayload
	versionSteps  []versionStep
	requestSteps  []requestStep
	versionCalls  int
	requestCalls  int
	versionParams []url.Values
}

func (c *fakeClient) Create(_ context.Context, resource string, payload any) (string, error) {
	if resource != org.ResourceInstallRequest {
		panic("unexpected create resource " + resource)
	}
	c.creates = append(c.creates, payload.(RequestPayload))
	return c.createID, c.createErr
}

func (c *fakeClient) Retrieve(_ context.Context, resource string, _ string, params url.Values, out any) error {
	switch resource {
	case org.ResourceSubscriberVersion:
		step := c.versionSteps[stepIndex(c.versionCalls, len(c.versionSteps))]
		c.versionCalls++
		c.versionParams = append(c.versionParams, params)
		if step.err != nil {
			return step.err
		}
		*out.(*SubscriberPackageVersion) = step.version
		return nil
	case org.ResourceInstallRequest:
		step := c.requestSteps[stepIndex(c.requestCalls, len(c.requestSteps))]
		c.requestCalls++
		if step.err != nil {
			return step.err
		}
		*out.(*InstallRequest) = step.request
		return nil
	}
	panic("unexpected retrieve resource " + resource)
}

func stepIndex(call int, total int) int {
	if call >= total {
		return total - 1
	}
	return call
}

const (
	testVersionID = "04tB00000009T2zIAE"
	testRequestID = "0HfB00000004CFKKA2"
)

// publishedVersion returns a publish-ready version with the given container type.
func publishedVersion(container ContainerType) SubscriberPackageVersion {
	return SubscriberPackageVersion{
		ID:            testVersionID,
		ContainerType: container,
		Published:     true,
	}
}

// fastOptions returns Options wired to client with millisecond intervals.
func fastOptions(client *fakeClient) Options {
	return Options{
		ID:                  testVersionID,
		SecurityType:        SecurityAllUsers,
		NoPrompt:            true,
		Client:              client,
		PollInterval:        time.Millisecond,
		PublishPollInterval: time.Millisecond,
	}
}
