package install

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/conn-castle/package-layer/internal/messages"
	"github.com/conn-castle/package-layer/internal/org"
)

const (
	// defaultPublishPollInterval is the wait between publish readiness checks.
	defaultPublishPollInterval = 10 * time.Second
	// defaultPollInterval is the wait between install request polls.
	defaultPollInterval = 5 * time.Second
)

// installationKeyParam is the query parameter carrying the installation key
// on protected-package reads.
const installationKeyParam = "installationKey"

// RetryBudget converts a wait in minutes into a retry count for the given
// poll interval. A zero or negative wait gives a zero budget.
func RetryBudget(waitMinutes int, interval time.Duration) int {
	if waitMinutes <= 0 || interval <= 0 {
		return 0
	}
	return int(math.Ceil(float64(waitMinutes) * 60000 / float64(interval.Milliseconds())))
}

// fetchSubscriberVersion retrieves the version to install, waiting out
// server-side publish replication up to the retry budget. Running out of
// budget is not an error: the install proceeds with the last-known view
// and any consequence surfaces as an install failure later.
func (r *runner) fetchSubscriberVersion(ctx context.Context, versionID string, retries int) (SubscriberPackageVersion, error) {
	var params url.Values
	if r.opts.InstallationKey != "" {
		params = url.Values{}
		params.Set(installationKeyParam, r.opts.InstallationKey)
	}

	for {
		var version SubscriberPackageVersion
		err := r.client.Retrieve(ctx, org.ResourceSubscriberVersion, versionID, params, &version)
		switch {
		case err == nil && version.Published:
			return version, nil
		case err != nil && !org.IsNotFound(err):
			// A version mid-replication can 404; anything else is fatal.
			return SubscriberPackageVersion{}, err
		}
		if retries <= 0 {
			return version, nil
		}

		state := "Pending"
		if err != nil {
			state = "Unavailable"
		}
		fmt.Fprintf(r.statusWriter, messages.InstallPublishWaitStatusFmt, state)
		if err := sleepContext(ctx, r.publishPollInterval); err != nil {
			return version, err
		}
		retries--
	}
}
