package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Target receives rendered routes. path is the concrete route path
// (e.g. "/users/42"); implementations decide the storage layout.
type Target interface {
	Put(ctx context.Context, path string, body []byte) error
}

// routeFile maps a route path to a relative file name:
// "/" becomes "index.html", "/users" becomes "users/index.html".
func routeFile(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + "/index.html"
}

// DirTarget writes rendered routes under a local directory.
type DirTarget struct {
	dir string
}

// NewDirTarget creates a filesystem target rooted at dir.
func NewDirTarget(dir string) *DirTarget {
	return &DirTarget{dir: dir}
}

// Put implements Target.
func (t *DirTarget) Put(ctx context.Context, path string, body []byte) error {
	file := filepath.Join(t.dir, filepath.FromSlash(routeFile(path)))
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(file, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

// S3Client is the slice of the S3 API the target needs. *s3.Client
// satisfies it.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target uploads rendered routes to an S3 bucket.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	target := export.NewS3Target(s3.NewFromConfig(cfg), "my-bucket", "site/")
type S3Target struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3Target creates an S3 target. prefix is prepended to every key.
func NewS3Target(client S3Client, bucket, prefix string) *S3Target {
	return &S3Target{client: client, bucket: bucket, prefix: prefix}
}

// Put implements Target.
func (t *S3Target) Put(ctx context.Context, path string, body []byte) error {
	key := t.prefix + routeFile(path)
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return nil
}
