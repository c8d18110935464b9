package install

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/conn-castle/package-layer/internal/messages"
	"github.com/conn-castle/package-layer/internal/org"
)

// Message renders the user-facing result line for the outcome.
// targetOrg names the org in pending reports. The TERMINATED sentinel
// yields an empty string so callers can suppress output entirely.
func (o Outcome) Message(targetOrg string) string {
	switch o.Request.Status {
	case StatusSuccess:
		return fmt.Sprintf(messages.InstallSuccessFmt, o.Request.SubscriberPackageVersionKey)
	case StatusTerminated:
		return ""
	}
	return fmt.Sprintf(messages.InstallPendingFmt, o.Request.ID, o.Request.Status, targetOrg, o.Request.ID, targetOrg)
}

// CheckRequest retrieves an install request once and reports it the way
// the poll loop would, including the terminal error aggregation. It backs
// the report command that a timed-out install points the user at.
func CheckRequest(ctx context.Context, client org.Client, requestID string) (Outcome, error) {
	if client == nil {
		return Outcome{}, errors.New(messages.InstallClientRequired)
	}
	r := &runner{
		client:       client,
		warnWriter:   io.Discard,
		statusWriter: io.Discard,
		pollInterval: defaultPollInterval,
	}
	request, _, err := r.pollInstallRequest(ctx, requestID, 0)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Request: request}, nil
}
