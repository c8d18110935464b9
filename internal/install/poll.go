package install

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/conn-castle/package-layer/internal/messages"
	"github.com/conn-castle/package-layer/internal/org"
)

// aggregateErrors folds the request's structured errors into one numbered,
// newline-joined message.
func aggregateErrors(errs []InstallError) string {
	if len(errs) == 0 {
		return messages.InstallErrorsEmpty
	}
	var b strings.Builder
	b.WriteString(messages.InstallErrorsPrefix)
	for i, entry := range errs {
		fmt.Fprintf(&b, messages.InstallErrorItemFmt, i+1, entry.Message)
	}
	return b.String()
}

// pollInstallRequest retrieves the install request until it reaches a
// terminal status or the retry budget runs out. The second return reports
// budget exhaustion with the request still pending; the last-fetched
// resource is returned either way.
func (r *runner) pollInstallRequest(ctx context.Context, requestID string, retries int) (InstallRequest, bool, error) {
	for {
		var request InstallRequest
		if err := r.client.Retrieve(ctx, org.ResourceInstallRequest, requestID, nil, &request); err != nil {
			return InstallRequest{}, false, err
		}

		switch request.Status {
		case StatusSuccess:
			return request, false, nil
		case StatusError:
			return request, false, &RemoteInstallError{RequestID: requestID, Message: aggregateErrors(request.Errors)}
		}

		if retries <= 0 {
			return request, true, nil
		}
		fmt.Fprintf(r.statusWriter, messages.InstallPollStatusFmt, request.Status)
		if err := sleepContext(ctx, r.pollInterval); err != nil {
			return request, false, err
		}
		retries--
	}
}

// sleepContext waits for d unless ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
