package editor

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	uploads []fakeUpload
	err     error
}

type fakeUpload struct {
	name        string
	contentType string
	data        []byte
}

func (u *fakeUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.uploads = append(u.uploads, fakeUpload{name: name, contentType: contentType, data: data})
	return fmt.Sprintf("https://cdn.example/u%d.png", len(u.uploads)), nil
}

func dataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestProcessRewritesEmbeddedImages(t *testing.T) {
	uploader := &fakeUploader{}
	pipe := NewPipeline(uploader)

	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	in := `<p>text</p><img src="` + dataURI("image/png", payload) + `" alt="figure">`

	out, err := pipe.Process(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, `<p>text</p><img src="https://cdn.example/u1.png" alt="figure"/>`, out)
	assert.NotContains(t, out, "base64")
	require.Len(t, uploader.uploads, 1)
	assert.Equal(t, "image/png", uploader.uploads[0].contentType)
	assert.Equal(t, payload, uploader.uploads[0].data)
}

func TestProcessLeavesRegularImagesAlone(t *testing.T) {
	uploader := &fakeUploader{}
	pipe := NewPipeline(uploader)

	in := `<img src="https://cdn.example/existing.jpg" alt="x">`
	out, err := pipe.Process(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, `<img src="https://cdn.example/existing.jpg" alt="x"/>`, out)
	assert.Empty(t, uploader.uploads)
}

func TestProcessRewritesEveryEmbeddedImage(t *testing.T) {
	uploader := &fakeUploader{}
	pipe := NewPipeline(uploader)

	in := `<img src="` + dataURI("image/png", []byte("a")) + `"><img src="` + dataURI("image/jpeg", []byte("b")) + `">`
	out, err := pipe.Process(context.Background(), in)
	require.NoError(t, err)

	assert.NotContains(t, out, "data:image/")
	assert.Len(t, uploader.uploads, 2)
}

// The save fails rather than persisting inline base64 when the upload does.
func TestProcessFailsWhenUploadFails(t *testing.T) {
	uploader := &fakeUploader{err: fmt.Errorf("bucket unavailable")}
	pipe := NewPipeline(uploader)

	in := `<img src="` + dataURI("image/png", []byte("a")) + `">`
	_, err := pipe.Process(context.Background(), in)
	assert.Error(t, err)
}

func TestProcessFailsWithoutUploader(t *testing.T) {
	pipe := NewPipeline(nil)

	in := `<img src="` + dataURI("image/png", []byte("a")) + `">`
	_, err := pipe.Process(context.Background(), in)
	assert.Error(t, err)

	// Content without embedded images does not need a media backend.
	out, err := pipe.Process(context.Background(), `<p>plain</p>`)
	require.NoError(t, err)
	assert.Equal(t, `<p>plain</p>`, out)
}
