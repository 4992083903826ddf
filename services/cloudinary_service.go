package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"
)

// CloudinaryService is the asset store for product galleries and category
// covers. Mutation flows call it directly; the cache layer never does.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadGallery uploads every file in parallel and returns the URLs in the
// original file order (first entry becomes the primary image). One failed
// upload fails the whole call; already-uploaded siblings are left behind as
// orphans and only logged — an accepted gap for an admin-only tool.
func (s *CloudinaryService) UploadGallery(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, fileHeader := range files {
		i, fileHeader := i, fileHeader
		g.Go(func() error {
			file, err := fileHeader.Open()
			if err != nil {
				return fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
			}
			defer file.Close()

			filename := fmt.Sprintf("%s_%d", fileHeader.Filename, i)
			url, err := s.UploadImage(gctx, file, filename, folder)
			if err != nil {
				return err
			}

			mu.Lock()
			urls[i] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[assets] gallery upload failed, partial uploads may be orphaned in %s: %v", folder, err)
		return nil, err
	}
	return urls, nil
}

// DeleteReplacedAssets destroys the assets whose URLs were dropped from a
// gallery. Runs after the record already points at the new gallery, so a
// failure here only leaks storage.
func (s *CloudinaryService) DeleteReplacedAssets(ctx context.Context, oldURLs, newURLs []string) error {
	keep := make(map[string]bool, len(newURLs))
	for _, u := range newURLs {
		keep[u] = true
	}

	var firstErr error
	for _, u := range oldURLs {
		if keep[u] {
			continue
		}
		publicID := publicIDFromURL(u)
		if publicID == "" {
			continue
		}
		_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to destroy %s: %w", publicID, err)
		}
	}
	return firstErr
}

// publicIDFromURL extracts the Cloudinary public ID from a delivery URL:
// everything after /upload/v123/ with the file extension stripped.
func publicIDFromURL(url string) string {
	_, after, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}
	// Drop the version segment (v1234567890/)
	if strings.HasPrefix(after, "v") {
		if slash := strings.Index(after, "/"); slash != -1 {
			if _, err := strconv.Atoi(after[1:slash]); err == nil {
				after = after[slash+1:]
			}
		}
	}
	if dot := strings.LastIndex(after, "."); dot > strings.LastIndex(after, "/") {
		after = after[:dot]
	}
	return after
}

// DeleteFolder deletes every asset under a folder prefix, then the folder
// structure itself. Used after a product or category record is gone; failures
// are the caller's to log and ignore, never to surface to the admin.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}

	// Cloudinary usually removes empty folders itself; try anyway, ignore errors.
	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folderPath})
	return nil
}

// ProductFolder and CategoryFolder name the per-record asset folders.
func ProductFolder(productID string) string {
	return "toystore/products/" + productID
}

func CategoryFolder(categoryID string) string {
	return "toystore/categories/" + categoryID
}
