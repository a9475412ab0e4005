package upload

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores an image asset and returns its hosted URL. Entity forms
// upload first, then submit the entity referencing the URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
