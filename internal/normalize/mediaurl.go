package normalize

import (
	"strings"
)

// RewriteMediaURL turns an s3:// URI into the public virtual-hosted HTTPS
// form the video player can fetch. Anything that is not an s3 URI passes
// through untouched, so the rewrite is idempotent.
func RewriteMediaURL(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "s3://") {
		return raw
	}
	bucket, key, _ := strings.Cut(strings.TrimPrefix(s, "s3://"), "/")
	if bucket == "" {
		return raw
	}
	if key == "" {
		return "https://" + bucket + ".s3.amazonaws.com"
	}
	return "https://" + bucket + ".s3.amazonaws.com/" + key
}
