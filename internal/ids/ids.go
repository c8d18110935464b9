// Package ids validates the shape of remote resource identifiers.
//
// Identifiers are 15 or 18 alphanumeric characters and carry a three-character
// key prefix that encodes the resource type.
package ids

import "strings"

const (
	// SubscriberPackageVersionPrefix is the key prefix for subscriber package version ids.
	SubscriberPackageVersionPrefix = "04t"
	// InstallRequestPrefix is the key prefix for package install request ids.
	InstallRequestPrefix = "0Hf"
)

// HasPrefix reports whether id carries the given key prefix.
func HasPrefix(id string, prefix string) bool {
	return strings.HasPrefix(id, prefix)
}

// Valid reports whether id is a well-formed identifier with the given key prefix.
func Valid(id string, prefix string) bool {
	if !strings.HasPrefix(id, prefix) {
		return false
	}
	if len(id) != 15 && len(id) != 18 {
		return false
	}
	for _, r := range id {
		if !isAlphanumeric(r) {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	}
	return false
}
