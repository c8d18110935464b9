package messages

// Config messages for project configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt = "missing config file %s: %w"
	// ConfigInvalidConfigFmt formats TOML parse failures.
	ConfigInvalidConfigFmt = "invalid config %s: %w"

	// ConfigAPIVersionUnsupportedFmt rejects API versions below the supported minimum.
	ConfigAPIVersionUnsupportedFmt = "%s: api_version %d is not supported; the minimum is %d"
	// ConfigAliasIDInvalidFmt rejects alias entries that map to malformed version ids.
	ConfigAliasIDInvalidFmt = "%s: alias %q maps to invalid subscriber package version id %q"
)
