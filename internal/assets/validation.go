package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that name is usable as a bare file stem.
// Empty names and names containing separators or dots are rejected with
// ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
