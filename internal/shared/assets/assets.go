// Package assets serves static files inlined into pages as data URIs.
package assets

import (
	"encoding/base64"
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var cache sync.Map // filename -> func() string

// DataURI reads the file once per process lifetime and returns it as a
// base64 data URI suitable for a CSS background-image. The asset is static,
// so the memoized value is never invalidated. A missing or unreadable file
// yields an empty string and a single warning.
func DataURI(filename string, logger zerolog.Logger) string {
	once, _ := cache.LoadOrStore(filename, sync.OnceValue(func() string {
		data, err := os.ReadFile(filename)
		if err != nil {
			logger.Warn().Err(err).Str("file", filename).Msg("Background image not readable, pages render without it")
			return ""
		}

		contentType := http.DetectContentType(data)
		return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	}))

	return once.(func() string)()
}
