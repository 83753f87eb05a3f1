package core

import (
	"fmt"
	"path"
	"strings"
)

const AssetPrefix = "/assets/"

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ValidateAssetName accepts slash-separated names relative to the asset root.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("asset name cannot be empty")
	}

	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("asset name must be relative")
	}

	if strings.Contains(name, "\\") {
		return fmt.Errorf("asset name must use forward slashes")
	}

	if path.Clean(name) != name || strings.HasPrefix(name, "..") {
		return fmt.Errorf("asset name cannot contain parent directory references")
	}

	if strings.ContainsAny(name, "?#") {
		return fmt.Errorf("asset name cannot contain query string or fragment")
	}

	return nil
}

// AssetURL builds the public URL for an asset, versioned when a fingerprint is known.
func AssetURL(name, fingerprint string) string {
	u := AssetPrefix + name
	if fingerprint != "" {
		u += "?v=" + fingerprint
	}
	return u
}
