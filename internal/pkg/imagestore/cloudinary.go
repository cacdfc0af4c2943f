package imagestore

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "AttendanceImages"

// CloudinaryUploader pushes attendance photos to Cloudinary and returns the
// hosted secure URL.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadBase64 implements Uploader.
func (u *CloudinaryUploader) UploadBase64(ctx context.Context, base64Image, name string) (string, error) {
	// Cloudinary accepts the image inline as a data URI.
	dataURI := "data:image/jpeg;base64," + stripDataURI(base64Image)

	resp, err := u.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{
		PublicID: name,
		Folder:   uploadFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image to cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
