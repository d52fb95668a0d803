package transcriber

import (
	"path/filepath"
	"strings"
)

// SupportedFormats lists accepted audio extensions without the dot.
var SupportedFormats = []string{"wav", "mp3", "ogg", "m4a", "webm"}

// IsSupported reports whether the file name has an accepted audio extension.
func IsSupported(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, f := range SupportedFormats {
		if ext == f {
			return true
		}
	}
	return false
}
