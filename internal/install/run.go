package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/conn-castle/package-layer/internal/messages"
	"github.com/conn-castle/package-layer/internal/org"
)

// Options controls one install invocation.
type Options struct {
	// ID is the direct subscriber package version id (--id).
	ID string
	// Package is an alias or direct version id (--package). Exactly one of
	// ID and Package must be set.
	Package string
	// InstallationKey unlocks a key-protected package.
	InstallationKey string
	// WaitMinutes is the install-poll budget. Zero polls exactly once.
	WaitMinutes int
	// PublishWaitMinutes is the publish-wait budget. Zero checks exactly once.
	PublishWaitMinutes int
	// UpgradeType applies to Unlocked containers only.
	UpgradeType UpgradeType
	// ApexCompileType applies to Unlocked containers only.
	ApexCompileType ApexCompileType
	// SecurityType must be set; the payload mapping is exhaustive.
	SecurityType SecurityType
	// NoPrompt auto-accepts every confirmation gate.
	NoPrompt bool

	// Client talks to the target org.
	Client org.Client
	// Aliases resolves --package aliases; may be nil when only ids are used.
	Aliases AliasResolver
	// Confirm asks the confirmation gates; required unless NoPrompt is set.
	Confirm Confirmer
	// WarnWriter receives dropped-option warnings. Defaults to io.Discard.
	WarnWriter io.Writer
	// StatusWriter receives intermediate wait-status lines. Defaults to io.Discard.
	StatusWriter io.Writer

	// PollInterval overrides the install-poll interval. Defaults to 5s.
	PollInterval time.Duration
	// PublishPollInterval overrides the publish-wait interval. Defaults to 10s.
	PublishPollInterval time.Duration
}

// Outcome is the final state of one install invocation.
type Outcome struct {
	// Request is the last-fetched install request resource.
	Request InstallRequest
	// TimedOut is set when the poll budget ran out before a terminal status.
	// The request may still complete server-side; the report command can
	// pick it up later.
	TimedOut bool
}

type runner struct {
	opts                Options
	client              org.Client
	warnWriter          io.Writer
	statusWriter        io.Writer
	pollInterval        time.Duration
	publishPollInterval time.Duration
}

func newRunner(opts Options) (*runner, error) {
	if opts.Client == nil {
		return nil, errors.New(messages.InstallClientRequired)
	}
	if !opts.NoPrompt && opts.Confirm == nil {
		return nil, errors.New(messages.InstallConfirmerRequired)
	}
	r := &runner{
		opts:                opts,
		client:              opts.Client,
		warnWriter:          opts.WarnWriter,
		statusWriter:        opts.StatusWriter,
		pollInterval:        opts.PollInterval,
		publishPollInterval: opts.PublishPollInterval,
	}
	if r.warnWriter == nil {
		r.warnWriter = io.Discard
	}
	if r.statusWriter == nil {
		r.statusWriter = io.Discard
	}
	if r.pollInterval <= 0 {
		r.pollInterval = defaultPollInterval
	}
	if r.publishPollInterval <= 0 {
		r.publishPollInterval = defaultPublishPollInterval
	}
	return r, nil
}

// validate rejects bad option values before any remote call is made.
func (r *runner) validate() error {
	if r.opts.WaitMinutes < 0 {
		return validationErrorf(messages.InstallWaitNegativeFmt, r.opts.WaitMinutes)
	}
	if r.opts.PublishWaitMinutes < 0 {
		return validationErrorf(messages.InstallPublishWaitNegativeFmt, r.opts.PublishWaitMinutes)
	}
	if _, err := r.opts.SecurityType.payloadValue(); err != nil {
		return err
	}
	if r.opts.UpgradeType != "" {
		if _, err := ParseUpgradeType(string(r.opts.UpgradeType)); err != nil {
			return err
		}
	}
	if r.opts.ApexCompileType != "" {
		if _, err := ParseApexCompileType(string(r.opts.ApexCompileType)); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the install flow end to end: resolve, publish-wait, gate,
// build, submit, poll.
func Run(ctx context.Context, opts Options) (Outcome, error) {
	r, err := newRunner(opts)
	if err != nil {
		return Outcome{}, err
	}
	if err := r.validate(); err != nil {
		return Outcome{}, err
	}

	versionID, err := ResolveVersionID(opts.ID, opts.Package, opts.Aliases)
	if err != nil {
		return Outcome{}, err
	}

	publishRetries := RetryBudget(opts.PublishWaitMinutes, r.publishPollInterval)
	version, err := r.fetchSubscriberVersion(ctx, versionID, publishRetries)
	if err != nil {
		return Outcome{}, err
	}

	if err := r.confirmUpgradeType(version); err != nil {
		return Outcome{}, err
	}
	enableExternalSites, err := r.confirmExternalSites(version)
	if err != nil {
		return Outcome{}, err
	}

	payload, err := BuildRequestPayload(versionID, version, r.opts, enableExternalSites, r.warnWriter)
	if err != nil {
		return Outcome{}, err
	}

	requestID, err := r.client.Create(ctx, org.ResourceInstallRequest, payload)
	if err != nil {
		return Outcome{}, err
	}
	if requestID == "" {
		return Outcome{}, &CreationError{VersionKey: versionID}
	}

	pollRetries := RetryBudget(opts.WaitMinutes, r.pollInterval)
	request, timedOut, err := r.pollInstallRequest(ctx, requestID, pollRetries)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Request: request, TimedOut: timedOut}, nil
}

// confirm runs one confirmation gate, auto-accepting in no-prompt mode.
func (r *runner) confirm(message string) (bool, error) {
	if r.opts.NoPrompt {
		return true, nil
	}
	return r.opts.Confirm.Confirm(message)
}

// confirmUpgradeType gates the destructive Delete upgrade type. Declining
// aborts the installation.
func (r *runner) confirmUpgradeType(version SubscriberPackageVersion) error {
	if r.opts.UpgradeType != UpgradeDelete || version.ContainerType != ContainerUnlocked {
		return nil
	}
	ok, err := r.confirm(messages.InstallConfirmDelete)
	if err != nil {
		return err
	}
	if !ok {
		return &PromptDeniedError{Prompt: messages.InstallConfirmDelete}
	}
	return nil
}

// confirmExternalSites gates granting access to the version's external
// sites. Declining leaves the sites disabled and the install proceeds.
func (r *runner) confirmExternalSites(version SubscriberPackageVersion) (bool, error) {
	if len(version.TrustedSites) == 0 {
		return false, nil
	}
	prompt := fmt.Sprintf(messages.InstallConfirmExternalSitesFmt, strings.Join(version.TrustedSites, "\n"))
	return r.confirm(prompt)
}
