package imagestore

import (
	"context"
	"regexp"
)

// Uploader stores an attendance photo and hands back a URL. The image
// arrives as the form sends it: a base64 string, with or without a data-URI
// prefix.
type Uploader interface {
	UploadBase64(ctx context.Context, base64Image, name string) (url string, err error)
}

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// stripDataURI removes a leading data-URI prefix, if present.
func stripDataURI(base64Image string) string {
	return dataURIPrefix.ReplaceAllString(base64Image, "")
}
