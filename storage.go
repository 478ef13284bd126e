package supabase

import (
	"bytes"
	"fmt"
	"time"

	storage_go "github.com/supabase-community/storage-go"
)

// StorageProvider returns the storage-go backed implementation of the
// StorageProvider contract, bound to this client's project and credentials.
func (c *Client) StorageProvider() StorageProvider {
	return &supabaseStorage{
		client:  c.Storage,
		baseURL: c.config.baseTrimmed(),
	}
}

type supabaseStorage struct {
	client  *storage_go.Client
	baseURL string
}

var _ StorageProvider = (*supabaseStorage)(nil)

func (s *supabaseStorage) Upload(bucket, path string, data []byte, contentType string) (string, error) {
	opts := storage_go.FileOptions{}
	if contentType != "" {
		opts.ContentType = &contentType
	}
	_, err := s.client.UploadFile(bucket, path, bytes.NewReader(data), opts)
	if err != nil {
		return "", err
	}
	return bucket + "/" + path, nil
}

func (s *supabaseStorage) Download(bucket, path string) ([]byte, error) {
	return s.client.DownloadFile(bucket, path)
}

func (s *supabaseStorage) Remove(bucket string, paths ...string) error {
	_, err := s.client.RemoveFile(bucket, paths)
	return err
}

// DefaultListLimit is the page size used by List when the caller passes a
// non-positive limit.
const DefaultListLimit = 100

func (s *supabaseStorage) List(bucket, prefix string, limit int) ([]StorageObject, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	files, err := s.client.ListFiles(bucket, prefix, storage_go.FileSearchOptions{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	objects := make([]StorageObject, 0, len(files))
	for _, f := range files {
		objects = append(objects, StorageObject{
			Name:      f.Name,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
		})
	}
	return objects, nil
}

// PublicURL builds the public object URL without touching the network. The
// object must live in a public bucket to be reachable.
func (s *supabaseStorage) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, path)
}

func (s *supabaseStorage) SignedURL(bucket, path string, expiresIn time.Duration) (string, error) {
	resp, err := s.client.CreateSignedUrl(bucket, path, int(expiresIn.Seconds()))
	if err != nil {
		return "", err
	}
	return resp.SignedURL, nil
}
