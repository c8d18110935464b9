package messages

// Install messages for the install and report commands and the install core.
const (
	// InstallUse is the install command name.
	InstallUse = "install"
	// InstallShort is the short description for the install command.
	InstallShort = "Install a package version into a target org"
	InstallLong  = "Create a package install request in the target org and poll it until it succeeds, fails, or the wait budget runs out."

	InstallFlagID              = "Subscriber package version id (starts with 04t)"
	InstallFlagPackage         = "Package alias from package-layer.toml, or a subscriber package version id"
	InstallFlagInstallationKey = "Installation key for a key-protected package"
	InstallFlagWait            = "Minutes to wait for the install request to finish"
	InstallFlagPublishWait     = "Minutes to wait for the package version to become available before installing"
	InstallFlagUpgradeType     = "Handling of removed components on upgrade: Delete, DeprecateOnly, or Mixed (Unlocked packages only)"
	InstallFlagApexCompile     = "Apex compilation scope after install: all or package (Unlocked packages only)"
	InstallFlagSecurityType    = "Profile access granted to the installed package: AllUsers or AdminsOnly"
	InstallFlagNoPrompt        = "Answer yes to all confirmation prompts"
	InstallFlagTargetOrg       = "Name of the credentials entry for the target org"

	// InstallFlagsExclusive rejects --id combined with --package.
	InstallFlagsExclusive = "--id and --package cannot be used together"
	// InstallFlagsRequired rejects invocations with neither identifier flag.
	InstallFlagsRequired = "either --id or --package is required"

	InstallInvalidVersionIDFmt = "invalid subscriber package version id %q"
	InstallUnknownAliasFmt     = "unknown package alias %q"
	InstallInvalidRequestIDFmt = "invalid package install request id %q"

	InstallSecurityTypeInvalidFmt = "--security-type must be AllUsers or AdminsOnly (got %q)"
	InstallUpgradeTypeInvalidFmt  = "--upgrade-type must be Delete, DeprecateOnly, or Mixed (got %q)"
	InstallApexCompileInvalidFmt  = "--apex-compile must be all or package (got %q)"
	InstallWaitNegativeFmt        = "--wait must be zero or greater (got %d)"
	InstallPublishWaitNegativeFmt = "--publish-wait must be zero or greater (got %d)"

	// InstallUpgradeTypeIgnoredFmt warns when --upgrade-type is dropped for a non-Unlocked package.
	InstallUpgradeTypeIgnoredFmt = "Warning: --upgrade-type applies only to Unlocked packages; ignoring %q\n"
	InstallApexCompileIgnoredFmt = "Warning: --apex-compile applies only to Unlocked packages; ignoring %q\n"

	// InstallConfirmDelete gates the destructive Delete upgrade type.
	InstallConfirmDelete = "The Delete upgrade type permanently deletes metadata that is removed in the new package version. Proceed"
	// InstallConfirmExternalSitesFmt gates granting access to the package's external sites.
	InstallConfirmExternalSitesFmt = "This package might send or receive data from these external sites:\n%s\nGrant access"

	InstallPublishWaitStatusFmt = "Waiting for the package version to become available; current status: %s\n"
	InstallPollStatusFmt        = "Install request status: %s\n"

	// InstallErrorsPrefix opens the aggregated remote error message.
	InstallErrorsPrefix = "Installation errors: "
	// InstallErrorItemFmt formats one numbered remote error entry.
	InstallErrorItemFmt = "\n%d) %s"
	// InstallErrorsEmpty is reported when the request failed without structured errors.
	InstallErrorsEmpty = "<empty>"

	// InstallKeyPrompt asks for the installation key when --installation-key is "-".
	InstallKeyPrompt = "Installation key: "

	// InstallCanceled reports an installation aborted by a declined prompt.
	InstallCanceled = "package installation canceled by request"
	// InstallCreateFailedFmt reports a create call that returned no request id.
	InstallCreateFailedFmt = "failed to create an install request for package version %s"

	InstallClientRequired    = "org client is required"
	InstallConfirmerRequired = "a confirmation prompter is required unless prompts are disabled"

	// InstallSuccessFmt reports a completed install with the installed version key.
	InstallSuccessFmt = "Successfully installed package [%s]"
	// InstallPendingFmt reports a request that has not reached a terminal status.
	InstallPendingFmt = "Install request %s is currently %s in org %s. Run \"pl report --request-id %s --target-org %s\" to check the status later."

	// ReportUse is the report command name.
	ReportUse   = "report"
	ReportShort = "Check the status of a package install request"
	ReportLong  = "Retrieve a package install request once and print the same status report the install command would."

	ReportFlagRequestID     = "Package install request id (starts with 0Hf)"
	ReportRequestIDRequired = "--request-id is required"
)
