package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL-style
// credential string.
func NewCloudinaryUploader(credentialsURL, folder string) (*CloudinaryUploader, error) {
	if credentialsURL == "" {
		return nil, fmt.Errorf("cloudinary url is not set")
	}
	cld, err := cloudinary.NewFromURL(credentialsURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	if _, err := extensionFor(contentType); err != nil {
		return "", err
	}
	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s-%s", uuid.NewString(), sanitizeName(name)),
		Folder:   u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
