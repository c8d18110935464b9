// Package install drives a package install request against a target org.
//
// One invocation resolves the version to install, waits for the version to
// finish publishing, gates risky options behind confirmation prompts,
// submits the server-side install request, and polls it until it reaches a
// terminal status or the wait budget runs out. All state is owned by the
// invocation; nothing is shared across concurrent installs.
package install

import "github.com/conn-castle/package-layer/internal/messages"

// SecurityType selects the profile access granted to the installed package.
type SecurityType string

const (
	// SecurityAllUsers grants the package's permissions to all profiles.
	SecurityAllUsers SecurityType = "AllUsers"
	// SecurityAdminsOnly grants the package's permissions to admins only.
	SecurityAdminsOnly SecurityType = "AdminsOnly"
)

// ParseSecurityType validates a raw --security-type flag value.
func ParseSecurityType(raw string) (SecurityType, error) {
	switch SecurityType(raw) {
	case SecurityAllUsers, SecurityAdminsOnly:
		return SecurityType(raw), nil
	}
	return "", validationErrorf(messages.InstallSecurityTypeInvalidFmt, raw)
}

// payloadValue maps the security type onto its wire value. The mapping is
// closed: unmapped inputs are rejected, never silently omitted.
func (s SecurityType) payloadValue() (string, error) {
	switch s {
	case SecurityAllUsers:
		return "full", nil
	case SecurityAdminsOnly:
		return "none", nil
	}
	return "", validationErrorf(messages.InstallSecurityTypeInvalidFmt, string(s))
}

// UpgradeType controls how components removed in the new version are handled.
type UpgradeType string

const (
	// UpgradeDelete permanently deletes removed components.
	UpgradeDelete UpgradeType = "Delete"
	// UpgradeDeprecateOnly marks removed components deprecated but keeps them.
	UpgradeDeprecateOnly UpgradeType = "DeprecateOnly"
	// UpgradeMixed lets the org decide per component type.
	UpgradeMixed UpgradeType = "Mixed"
)

// DefaultUpgradeType is applied when --upgrade-type is not set.
const DefaultUpgradeType = UpgradeMixed

// ParseUpgradeType validates a raw --upgrade-type flag value.
// An empty value yields the default.
func ParseUpgradeType(raw string) (UpgradeType, error) {
	if raw == "" {
		return DefaultUpgradeType, nil
	}
	switch UpgradeType(raw) {
	case UpgradeDelete, UpgradeDeprecateOnly, UpgradeMixed:
		return UpgradeType(raw), nil
	}
	return "", validationErrorf(messages.InstallUpgradeTypeInvalidFmt, raw)
}

// ApexCompileType controls the compilation scope after install.
type ApexCompileType string

const (
	// ApexCompileAll compiles all Apex in the org.
	ApexCompileAll ApexCompileType = "all"
	// ApexCompilePackage compiles only the package's Apex.
	ApexCompilePackage ApexCompileType = "package"
)

// DefaultApexCompileType is applied when --apex-compile is not set.
const DefaultApexCompileType = ApexCompileAll

// ParseApexCompileType validates a raw --apex-compile flag value.
// An empty value yields the default.
func ParseApexCompileType(raw string) (ApexCompileType, error) {
	if raw == "" {
		return DefaultApexCompileType, nil
	}
	switch ApexCompileType(raw) {
	case ApexCompileAll, ApexCompilePackage:
		return ApexCompileType(raw), nil
	}
	return "", validationErrorf(messages.InstallApexCompileInvalidFmt, raw)
}

// ContainerType classifies a package version. Only Unlocked containers
// honor the upgrade-type and apex-compile options.
type ContainerType string

// ContainerUnlocked is the container type that accepts upgrade and compile options.
const ContainerUnlocked ContainerType = "Unlocked"

// Status is the remote install request status.
type Status string

const (
	// StatusInProgress is the usual non-terminal status after submission.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusSuccess is the terminal success status.
	StatusSuccess Status = "SUCCESS"
	// StatusError is the terminal failure status.
	StatusError Status = "ERROR"
	// StatusTerminated is a local sentinel that suppresses result output.
	// The org never returns it.
	StatusTerminated Status = "TERMINATED"
)

// Terminal reports whether no further polling can change the status.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// SubscriberPackageVersion is the remote read-only view of the version to
// install, fetched once before submission.
type SubscriberPackageVersion struct {
	ID            string        `json:"Id"`
	ContainerType ContainerType `json:"ContainerType"`
	TrustedSites  []string      `json:"TrustedSites"`
	Published     bool          `json:"Published"`
}

// InstallRequest is the remote install request resource.
type InstallRequest struct {
	ID                          string         `json:"Id"`
	Status                      Status         `json:"Status"`
	SubscriberPackageVersionKey string         `json:"SubscriberPackageVersionKey"`
	Errors                      []InstallError `json:"Errors"`
}

// InstallError is one structured error entry on a failed install request.
type InstallError struct {
	Message string `json:"Message"`
}

// Fixed payload fields: conflicting component names always block the
// install, and the request is tagged as a user-driven install.
const (
	nameConflictResolution = "Block"
	packageInstallSource   = "U"
)

// RequestPayload is the payload submitted to create the install request.
// Optional fields are omitted from the wire form when unset.
type RequestPayload struct {
	SubscriberPackageVersionKey string `json:"SubscriberPackageVersionKey"`
	InstallationKey             string `json:"InstallationKey,omitempty"`
	SecurityType                string `json:"SecurityType"`
	NameConflictResolution      string `json:"NameConflictResolution"`
	PackageInstallSource        string `json:"PackageInstallSource"`
	UpgradeType                 string `json:"UpgradeType,omitempty"`
	ApexCompileType             string `json:"ApexCompileType,omitempty"`
	EnableExternalSites         bool   `json:"EnableExternalSites"`
}
