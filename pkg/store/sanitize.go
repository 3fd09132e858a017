package store

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxNameLength leaves room for an extension under common 255-byte
// filesystem limits.
const MaxNameLength = 250

const dangerousChars = "<>:\"|?*\x00"

// Windows reserved device names, rejected regardless of extension.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Sanitize validates a user-supplied name for use as an on-disk filename.
// It returns the trimmed name unchanged on success; extension handling is
// the caller's responsibility. All failures wrap ErrInvalidName.
func Sanitize(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}

	if strings.ContainsAny(name, "/\\") {
		return "", fmt.Errorf("%w: name contains a path separator", ErrInvalidName)
	}

	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: name cannot start with '.'", ErrInvalidName)
	}

	if i := strings.IndexAny(name, dangerousChars); i >= 0 {
		return "", fmt.Errorf("%w: name contains %q", ErrInvalidName, name[i])
	}

	for _, r := range name {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return "", fmt.Errorf("%w: name contains a non-printable character", ErrInvalidName)
		}
	}

	stem := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		stem = name[:i]
	}
	if _, ok := reservedNames[strings.ToUpper(stem)]; ok {
		return "", fmt.Errorf("%w: %q is a reserved system name", ErrInvalidName, name)
	}

	if len(name) > MaxNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return name, nil
}
