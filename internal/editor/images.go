package editor

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/egemed/clinic_backend/internal/media"
)

// Pipeline is the full save path for editor content: sanitize, then replace
// every embedded data-URI image with an uploaded asset URL. Content is never
// persisted with inline base64 payloads.
type Pipeline struct {
	uploader media.Uploader
}

func NewPipeline(uploader media.Uploader) *Pipeline {
	return &Pipeline{uploader: uploader}
}

func (p *Pipeline) Process(ctx context.Context, fragment string) (string, error) {
	clean, err := Sanitize(fragment)
	if err != nil {
		return "", err
	}
	return p.rewriteEmbeddedImages(ctx, clean)
}

func (p *Pipeline) rewriteEmbeddedImages(ctx context.Context, fragment string) (string, error) {
	if !strings.Contains(fragment, "data:image/") {
		return fragment, nil
	}
	if p.uploader == nil {
		return "", fmt.Errorf("content contains embedded images but no media backend is configured")
	}

	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		if err := p.rewriteNode(ctx, n); err != nil {
			return "", err
		}
		if err := renderClean(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (p *Pipeline) rewriteNode(ctx context.Context, n *html.Node) error {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "img") {
		for i, a := range n.Attr {
			if strings.ToLower(a.Key) != "src" || !strings.HasPrefix(a.Val, "data:image/") {
				continue
			}
			url, err := p.uploadDataURI(ctx, a.Val)
			if err != nil {
				return err
			}
			n.Attr[i].Val = url
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := p.rewriteNode(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// uploadDataURI decodes a data:image/<type>;base64,<payload> URI and pushes
// the bytes through the media backend.
func (p *Pipeline) uploadDataURI(ctx context.Context, uri string) (string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return "", fmt.Errorf("malformed data uri in content")
	}
	contentType := meta
	if idx := strings.Index(meta, ";"); idx >= 0 {
		contentType = meta[:idx]
		if !strings.Contains(meta, "base64") {
			return "", fmt.Errorf("unsupported data uri encoding in content")
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode embedded image: %w", err)
	}
	url, err := p.uploader.Upload(ctx, "editor", contentType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("upload embedded image: %w", err)
	}
	return url, nil
}
