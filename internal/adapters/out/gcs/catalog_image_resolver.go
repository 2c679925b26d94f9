// backend/internal/adapters/out/gcs/catalog_image_resolver.go
package gcs

import (
	"fmt"
	"net/url"
	"strings"
)

// CatalogImageResolver builds public URLs for product/catalog images.
//
// The catalog bucket has IAM "allUsers: Storage Object Viewer" (uniform
// access), so uploaded objects are publicly readable without per-object ACLs
// and no signing is needed.
type CatalogImageResolver struct {
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewCatalogImageResolver(bucket string) *CatalogImageResolver {
	return &CatalogImageResolver{
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

// PublicURL returns the public URL for an image file in the catalog bucket.
// Empty input yields an empty URL so callers can pass through unset refs.
func (r *CatalogImageResolver) PublicURL(imageFile string) string {
	img := strings.TrimSpace(imageFile)
	if r == nil || img == "" || strings.TrimSpace(r.Bucket) == "" {
		return ""
	}
	base := strings.TrimSpace(r.PublicBaseURL)
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	// Encode path but keep "/" separators.
	parts := strings.Split(img, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), r.Bucket, strings.Join(parts, "/"))
}
