package lake

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Timestamp formats t in UTC as YYYYMMDD_HHMMSS_mmm.
func Timestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s_%03d", t.Format("20060102_150405"), t.Nanosecond()/int(time.Millisecond))
}

// splitName returns the base name of an object without its last extension, and that extension.
// Dotfiles such as ".env" have no extension.
func splitName(name string) (stem, ext string) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	ext = path.Ext(base)
	if ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}
