// Package publish uploads the exported theme assets to S3 or an
// S3-compatible object store.
package publish

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/pkg/theme"
)

// ObjectPutter is the part of *s3.Client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Object is one file to upload.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
}

// Uploaded describes a stored object.
type Uploaded struct {
	Key    string
	Bytes  int
	SHA256 string
	ETag   string
}

// Config configures a Publisher.
type Config struct {
	Bucket       string
	Prefix       string
	CacheControl string

	// DryRun logs what would be uploaded without calling the store.
	DryRun bool

	// Logger receives progress logs. Nil uses slog.Default().
	Logger *slog.Logger
}

// Publisher uploads objects to one bucket.
type Publisher struct {
	client ObjectPutter
	config Config
	logger *slog.Logger
}

// New creates a Publisher. It fails with E160 when no bucket is set.
func New(client ObjectPutter, config Config) (*Publisher, error) {
	if config.Bucket == "" {
		return nil, errors.New("E160").
			WithSuggestion("Set publish.bucket in donut.json or DONUT_PUBLISH_BUCKET")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		config: config,
		logger: logger.With("component", "publish", "bucket", config.Bucket),
	}, nil
}

// Key returns the object key for name under the configured prefix.
func (p *Publisher) Key(name string) string {
	prefix := strings.Trim(p.config.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Publish uploads objects in order and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, objects []Object) ([]Uploaded, error) {
	if len(objects) == 0 {
		return nil, errors.New("E162")
	}

	ctx, span := otel.Tracer("github.com/donutdao/donut-ui/internal/publish").Start(ctx, "donut.publish")
	span.SetAttributes(
		attribute.String("donut.bucket", p.config.Bucket),
		attribute.Int("donut.objects", len(objects)),
	)
	defer span.End()

	out := make([]Uploaded, 0, len(objects))
	for _, obj := range objects {
		u, err := p.put(ctx, obj)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return out, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (p *Publisher) put(ctx context.Context, obj Object) (Uploaded, error) {
	sum := sha256.Sum256(obj.Body)
	u := Uploaded{
		Key:    p.Key(obj.Key),
		Bytes:  len(obj.Body),
		SHA256: hex.EncodeToString(sum[:]),
	}

	if p.config.DryRun {
		p.logger.Info("dry run", "key", u.Key, "bytes", u.Bytes)
		return u, nil
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.config.Bucket),
		Key:         aws.String(u.Key),
		Body:        bytes.NewReader(obj.Body),
		ContentType: aws.String(obj.ContentType),
		Metadata: map[string]string{
			"donut-sha256": u.SHA256,
			"upload-time":  time.Now().UTC().Format(time.RFC3339),
		},
	}
	if p.config.CacheControl != "" {
		input.CacheControl = aws.String(p.config.CacheControl)
	}

	start := time.Now()
	res, err := p.client.PutObject(ctx, input)
	if err != nil {
		return u, errors.New("E161").
			WithDetailf("Uploading s3://%s/%s failed.", p.config.Bucket, u.Key).
			Wrap(err)
	}
	if res != nil && res.ETag != nil {
		u.ETag = strings.Trim(*res.ETag, `"`)
	}

	p.logger.Info("uploaded", "key", u.Key, "bytes", u.Bytes, "duration", time.Since(start).Round(time.Millisecond))
	return u, nil
}

// ThemeObjects exports t as theme.json, theme.css and tailwind.config.js.
func ThemeObjects(t *theme.Theme) ([]Object, error) {
	exports := []struct {
		key         string
		format      theme.Format
		contentType string
	}{
		{"theme.json", theme.FormatJSON, "application/json"},
		{"theme.css", theme.FormatCSS, "text/css; charset=utf-8"},
		{"tailwind.config.js", theme.FormatTailwind, "text/javascript; charset=utf-8"},
	}

	objects := make([]Object, 0, len(exports))
	for _, e := range exports {
		var buf bytes.Buffer
		if err := theme.Encode(&buf, t, e.format); err != nil {
			return nil, errors.New("E104").WithDetailf("Exporting %s failed.", e.key).Wrap(err)
		}
		objects = append(objects, Object{Key: e.key, ContentType: e.contentType, Body: buf.Bytes()})
	}
	return objects, nil
}

// FileObject reads a file from disk as an object named key. The content
// type is taken from the extension.
func FileObject(file, key string) (Object, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Object{}, fmt.Errorf("read %s: %w", file, err)
	}
	ct := mime.TypeByExtension(filepath.Ext(file))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return Object{Key: key, ContentType: ct, Body: data}, nil
}

// DefaultRegion is used when neither ClientOptions nor the AWS configuration
// names a region.
const DefaultRegion = "us-east-1"

// ClientOptions configures the S3 client.
type ClientOptions struct {
	Region    string
	Endpoint  string
	PathStyle bool
}

// NewS3Client builds an S3 client from the default AWS configuration chain:
// environment, shared config and credentials files, SSO, and instance or
// task roles. A non-empty Region overrides the configured one.
func NewS3Client(ctx context.Context, opts ClientOptions) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.New("E163").Wrap(err)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	}), nil
}
