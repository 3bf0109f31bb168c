// Package media stores binary assets and hands back a public URL. Two
// backends are supported, picked by configuration: S3 and Cloudinary.
// It backs the admin upload endpoint and the editor's embedded-image
// extraction; regular form file uploads travel to the upstream API instead.
package media

import (
	"context"
	"fmt"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

// extensionFor maps the content types the editor and admin forms accept.
func extensionFor(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/svg+xml":
		return ".svg", nil
	default:
		return "", fmt.Errorf("unsupported image content type: %s", contentType)
	}
}
