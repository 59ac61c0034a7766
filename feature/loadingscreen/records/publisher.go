package records

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"loadscreen-export/core/storage"

	"github.com/minio/minio-go/v7"
)

// Publisher uploads exported files to a bucket.
type Publisher struct {
	client storage.Client
	cfg    storage.Config
}

// NewPublisher returns a publisher for cfg.Bucket.
func NewPublisher(client storage.Client, cfg storage.Config) *Publisher {
	return &Publisher{client: client, cfg: cfg}
}

// Prepare creates the bucket when missing.
func (p *Publisher) Prepare(ctx context.Context) error {
	return storage.EnsureBucket(ctx, p.client, p.cfg.Bucket, p.cfg.Region)
}

// Key returns the object key for a name relative to the output directory.
func (p *Publisher) Key(name string) string {
	return p.cfg.ObjectKey(filepath.ToSlash(name))
}

// PublishFile uploads the local file at path under name.
func (p *Publisher) PublishFile(ctx context.Context, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return p.put(ctx, name, f, st.Size())
}

// PublishBytes uploads data under name.
func (p *Publisher) PublishBytes(ctx context.Context, name string, data []byte) error {
	return p.put(ctx, name, bytes.NewReader(data), int64(len(data)))
}

func (p *Publisher) put(ctx context.Context, name string, r io.Reader, size int64) error {
	opts := minio.PutObjectOptions{ContentType: contentType(name)}
	if _, err := p.client.PutObject(ctx, p.cfg.Bucket, p.Key(name), r, size, opts); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}

// Pull downloads the object stored under name.
func (p *Publisher) Pull(ctx context.Context, name string) ([]byte, error) {
	obj, err := p.client.GetObject(ctx, p.cfg.Bucket, p.Key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", name, err)
	}
	return data, nil
}

// Published returns the keys already in the bucket under the configured prefix.
func (p *Publisher) Published(ctx context.Context) (map[string]int64, error) {
	return storage.ListKeys(ctx, p.client, p.cfg.Bucket, p.cfg.Prefix)
}

func contentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
