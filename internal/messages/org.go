package messages

// Org messages for the remote connection and credentials loading.
const (
	// OrgCreateRequestErrFmt formats failures to build an HTTP request.
	OrgCreateRequestErrFmt = "create %s request: %w"
	// OrgEncodePayloadErrFmt formats payload serialization failures.
	OrgEncodePayloadErrFmt = "encode %s payload: %w"
	// OrgRequestErrFmt formats transport-level request failures.
	OrgRequestErrFmt = "%s %s: %w"
	// OrgDecodeResponseErrFmt formats response deserialization failures.
	OrgDecodeResponseErrFmt = "decode %s response: %w"

	CredsMissingFileFmt     = "missing credentials file %s: %w"
	CredsInvalidFileFmt     = "invalid credentials file %s: %w"
	CredsResolveHomeErrFmt  = "resolve home dir: %w"
	CredsUnknownOrgFmt      = "no credentials for org %q in %s"
	CredsNoDefaultOrgFmt    = "no target org given and %s sets no default_org"
	CredsInstanceURLMissing = "credentials entry %q: instance_url is required"
	CredsAccessTokenMissing = "credentials entry %q: access_token is required"
	CredsInstanceURLBadFmt  = "credentials entry %q: invalid instance_url %q"
)
