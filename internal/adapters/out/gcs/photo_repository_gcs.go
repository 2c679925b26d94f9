// backend/internal/adapters/out/gcs/photo_repository_gcs.go
package gcs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iamcredentials/v1"

	photodom "fenestra/internal/domain/photo"
)

// PhotoRepositoryGCS implements photo.ObjectStore against the private
// customer-photo bucket.
//
// Layout:
// - bucket: <PHOTO_BUCKET> (private, no public read)
// - objectPath: photos/{ownerId}/{unixnano}-{suffix}.{ext}
//
// Access is exclusively via V4 signed GET URLs; the bucket carries no
// allUsers binding.
type PhotoRepositoryGCS struct {
	Client *storage.Client
	Bucket string

	// SignerEmail is the service account used for IAMCredentials SignBlob.
	// No JSON private key is required; the runtime identity must be allowed
	// to call iamcredentials.signBlob for that SA.
	SignerEmail string
}

func NewPhotoRepositoryGCS(client *storage.Client, bucket, signerEmail string) *PhotoRepositoryGCS {
	return &PhotoRepositoryGCS{
		Client:      client,
		Bucket:      strings.TrimSpace(bucket),
		SignerEmail: strings.TrimSpace(signerEmail),
	}
}

func (r *PhotoRepositoryGCS) bucket() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("photo_repository_gcs: storage client is nil")
	}
	if strings.TrimSpace(r.Bucket) == "" {
		return nil, errors.New("photo_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(r.Bucket), nil
}

// Put uploads bytes to the photo bucket.
func (r *PhotoRepositoryGCS) Put(ctx context.Context, objectPath, contentType string, data []byte) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}
	obj := strings.TrimSpace(objectPath)
	if obj == "" {
		return errors.New("photo_repository_gcs: objectPath is empty")
	}

	w := bh.Object(obj).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	// Safety: avoid writer hanging forever.
	w.ChunkSize = 0
	w.Metadata = map[string]string{
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Delete removes the object. A missing object is not an error (the metadata
// cleanup must still be able to proceed on retries).
func (r *PhotoRepositoryGCS) Delete(ctx context.Context, objectPath string) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}
	obj := strings.TrimSpace(objectPath)
	if obj == "" {
		return errors.New("photo_repository_gcs: objectPath is empty")
	}
	if err := bh.Object(obj).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}

// SignedDownloadURL issues a V4 signed GET URL via IAMCredentials SignBlob.
func (r *PhotoRepositoryGCS) SignedDownloadURL(ctx context.Context, objectPath string, expiresIn time.Duration) (string, error) {
	if r == nil {
		return "", errors.New("photo_repository_gcs: repo is nil")
	}
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return "", errors.New("photo_repository_gcs: bucket is empty")
	}
	obj := strings.TrimSpace(objectPath)
	if obj == "" {
		return "", errors.New("photo_repository_gcs: objectPath is empty")
	}

	// default / clamp
	if expiresIn <= 0 {
		expiresIn = 10 * time.Minute
	}
	if expiresIn > time.Hour {
		expiresIn = time.Hour
	}

	accessID := strings.TrimSpace(r.SignerEmail)
	if accessID == "" {
		return "", errors.New("photo_repository_gcs: signer email not configured (set GCS_SIGNER_EMAIL)")
	}

	svc, err := iamcredentials.NewService(ctx)
	if err != nil {
		return "", fmt.Errorf("photo_repository_gcs: iamcredentials init failed: %w", err)
	}

	signBytes := func(bts []byte) ([]byte, error) {
		name := fmt.Sprintf("projects/-/serviceAccounts/%s", accessID)
		req := &iamcredentials.SignBlobRequest{
			Payload: base64.StdEncoding.EncodeToString(bts),
		}
		resp, err := svc.Projects.ServiceAccounts.SignBlob(name, req).Do()
		if err != nil {
			return nil, err
		}
		sig, err := base64.StdEncoding.DecodeString(resp.SignedBlob)
		if err != nil {
			return nil, err
		}
		return sig, nil
	}

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "GET",
		GoogleAccessID: accessID,
		SignBytes:      signBytes,
		Expires:        time.Now().UTC().Add(expiresIn),
	}

	u, err := storage.SignedURL(b, obj, opts)
	if err != nil {
		return "", err
	}
	return u, nil
}

var _ photodom.ObjectStore = (*PhotoRepositoryGCS)(nil)
