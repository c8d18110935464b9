package messages

// CLI messages for the root command and shared prompt plumbing.
const (
	// RootUse is the CLI command name.
	RootUse = "pl"
	// RootShort is the short description for the root command.
	RootShort = "Package Layer CLI"
	// RootLong is the long description for the root command.
	RootLong = "Install versioned package artifacts into a remote org and track the install to completion."

	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// PromptFmt formats yes/no confirmation prompts.
	PromptFmt = "%s (yes/no): "
)
