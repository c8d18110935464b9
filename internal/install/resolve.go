package install

import (
	"github.com/conn-castle/package-layer/internal/ids"
	"github.com/conn-castle/package-layer/internal/messages"
)

// AliasResolver resolves package aliases to subscriber package version ids.
type AliasResolver interface {
	Resolve(alias string) (string, bool)
}

// AliasResolverFunc adapts a function into an AliasResolver.
type AliasResolverFunc func(alias string) (string, bool)

// Resolve implements AliasResolver.
func (f AliasResolverFunc) Resolve(alias string) (string, bool) {
	return f(alias)
}

// ResolveVersionID turns the --id / --package pair into a canonical
// subscriber package version id. Exactly one of the two must be set.
// A --package value without the version key prefix is looked up through
// the alias resolver.
func ResolveVersionID(id string, pkg string, aliases AliasResolver) (string, error) {
	if id != "" && pkg != "" {
		return "", validationErrorf(messages.InstallFlagsExclusive)
	}
	if id == "" && pkg == "" {
		return "", validationErrorf(messages.InstallFlagsRequired)
	}

	resolved := id
	if pkg != "" {
		resolved = pkg
		if !ids.HasPrefix(pkg, ids.SubscriberPackageVersionPrefix) {
			if aliases == nil {
				return "", validationErrorf(messages.InstallUnknownAliasFmt, pkg)
			}
			mapped, ok := aliases.Resolve(pkg)
			if !ok {
				return "", validationErrorf(messages.InstallUnknownAliasFmt, pkg)
			}
			resolved = mapped
		}
	}

	if !ids.Valid(resolved, ids.SubscriberPackageVersionPrefix) {
		return "", validationErrorf(messages.InstallInvalidVersionIDFmt, resolved)
	}
	return resolved, nil
}
