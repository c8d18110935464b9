package install

import (
	"fmt"
	"io"

	"github.com/conn-castle/package-layer/internal/messages"
)

// BuildRequestPayload assembles the install request payload from the
// resolved version id, the fetched version view, and the requested options.
// Upgrade-type and apex-compile values only reach the payload when they
// differ from their defaults and the target container is Unlocked;
// otherwise they are dropped with a warning on warnWriter.
func BuildRequestPayload(versionID string, version SubscriberPackageVersion, opts Options, enableExternalSites bool, warnWriter io.Writer) (RequestPayload, error) {
	security, err := opts.SecurityType.payloadValue()
	if err != nil {
		return RequestPayload{}, err
	}

	payload := RequestPayload{
		SubscriberPackageVersionKey: versionID,
		InstallationKey:             opts.InstallationKey,
		SecurityType:                security,
		NameConflictResolution:      nameConflictResolution,
		PackageInstallSource:        packageInstallSource,
		EnableExternalSites:         enableExternalSites,
	}

	unlocked := version.ContainerType == ContainerUnlocked
	if opts.UpgradeType != "" && opts.UpgradeType != DefaultUpgradeType {
		if unlocked {
			payload.UpgradeType = string(opts.UpgradeType)
		} else {
			fmt.Fprintf(warnWriter, messages.InstallUpgradeTypeIgnoredFmt, opts.UpgradeType)
		}
	}
	if opts.ApexCompileType != "" && opts.ApexCompileType != DefaultApexCompileType {
		if unlocked {
			payload.ApexCompileType = string(opts.ApexCompileType)
		} else {
			fmt.Fprintf(warnWriter, messages.InstallApexCompileIgnoredFmt, opts.ApexCompileType)
		}
	}

	return payload, nil
}
