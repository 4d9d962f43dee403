// Package media is the Cloudinary side of the admin write pipeline: MIME
// gating before any network call, folder routing per entity, and splicing
// results back as stable HTTPS reference URLs.
package media

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Upload folders, one per attachment kind.
const (
	FolderProjectThumbnails  = "portfolio/projects/thumbnails"
	FolderProjectImages      = "portfolio/projects/images"
	FolderBlogThumbnails     = "portfolio/blogs/thumbnails"
	FolderBlogImages         = "portfolio/blogs/images"
	FolderShowcaseThumbnails = "portfolio/showcase/thumbnails"
	FolderShowcaseMedia      = "portfolio/showcase/media"
	FolderAvatars            = "portfolio/profile/avatars"
	FolderResumes            = "portfolio/resumes"
)

var ErrNoURL = errors.New("media: upload returned no URL")

var documentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ImageAllowed gates thumbnail, avatar and gallery uploads.
func ImageAllowed(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// MediaAllowed gates showcase media uploads: images, GIFs and videos.
func MediaAllowed(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}

// DocumentAllowed gates resume uploads: PDF, DOC and DOCX only.
func DocumentAllowed(contentType string) bool {
	return documentTypes[contentType]
}

// ResourceTypeFor picks the Cloudinary resource type for a showcase media
// part. GIFs stay images.
func ResourceTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}

type Uploader struct {
	cld *cloudinary.Cloudinary
}

// New builds an Uploader from CLOUDINARY_URL.
func New() (*Uploader, error) {
	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// Upload pushes one binary to folder and returns its HTTPS reference URL.
// resourceType is "image" or "video".
func (u *Uploader) Upload(ctx context.Context, r io.Reader, folder, resourceType string) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     uuid.NewString(),
		ResourceType: resourceType,
	})
	if err != nil {
		return "", err
	}
	if res.SecureURL == "" {
		return "", ErrNoURL
	}
	return res.SecureURL, nil
}

// ResumeAsset is what a resume upload yields: the stored file URL, a
// forced-download variant, and the original file metadata.
type ResumeAsset struct {
	URL         string
	DownloadURL string
	FileName    string
	FileType    string
}

// UploadResume stores a resume as a raw asset, keeping the original
// extension in the public ID so the delivery URL identifies the file type.
func (u *Uploader) UploadResume(ctx context.Context, r io.Reader, fileName, contentType string) (ResumeAsset, error) {
	publicID := "resume_" + uuid.NewString()
	if ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")); ext != "" {
		publicID += "." + ext
	}

	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       FolderResumes,
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return ResumeAsset{}, err
	}
	if res.SecureURL == "" {
		return ResumeAsset{}, ErrNoURL
	}

	return ResumeAsset{
		URL:         res.SecureURL,
		DownloadURL: downloadURL(res.SecureURL, res.PublicID),
		FileName:    fileName,
		FileType:    contentType,
	}, nil
}

// downloadURL rewrites a delivery URL into one that forces a browser
// download of the original file.
func downloadURL(secureURL, publicID string) string {
	base, _, ok := strings.Cut(secureURL, "/upload/")
	if !ok {
		return secureURL
	}
	return base + "/upload/fl_attachment,fl_force_download/" + publicID
}
