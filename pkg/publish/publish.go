// Package publish renders documents and uploads them to S3 as static pages.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	p := publish.New(s3.NewFromConfig(cfg), "my-site",
//	    publish.WithPrefix("docs/"),
//	    publish.WithCacheControl("public, max-age=300"),
//	)
//	res, err := p.Publish(ctx, "index.html", doc)
//
// A document is rendered completely before the upload starts, so a render
// failure never leaves a partial object in the bucket.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/el/pkg/render"
)

// ContentType is set on every uploaded object.
const ContentType = "text/html; charset=utf-8"

const defaultTracerName = "github.com/vango-dev/el/pkg/publish"

// PutObjectAPI is the subset of *s3.Client used by a Publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ PutObjectAPI = (*s3.Client)(nil)

// Result describes an uploaded document.
type Result struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix prepends prefix to every object key.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func WithCacheControl(value string) Option {
	return func(p *Publisher) {
		p.cacheControl = value
	}
}

// WithMetadata adds user metadata to each object.
func WithMetadata(md map[string]string) Option {
	return func(p *Publisher) {
		p.metadata = maps.Clone(md)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTracer sets the tracer. By default the global provider is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Publisher) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// Publisher uploads rendered documents to one bucket.
type Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
	metadata     map[string]string
	logger       *slog.Logger
	tracer       trace.Tracer
}

// New creates a Publisher. client is usually an *s3.Client.
func New(client PutObjectAPI, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client: client,
		bucket: bucket,
		logger: slog.Default().With("component", "publish"),
		tracer: otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish renders doc and stores it under key.
func (p *Publisher) Publish(ctx context.Context, key string, doc render.Document) (Result, error) {
	fullKey := p.prefix + key
	ctx, span := p.tracer.Start(ctx, "publish "+fullKey,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("s3.bucket", p.bucket),
			attribute.String("s3.key", fullKey),
		),
	)
	defer span.End()

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return Result{}, fmt.Errorf("publish %s: %w", fullKey, err)
	}
	size := int64(buf.Len())

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(ContentType),
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}
	if len(p.metadata) > 0 {
		input.Metadata = maps.Clone(p.metadata)
	}

	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")
		p.logger.Error("upload failed", "bucket", p.bucket, "key", fullKey, "error", err)
		return Result{}, fmt.Errorf("publish %s: s3 upload failed: %w", fullKey, err)
	}

	res := Result{Bucket: p.bucket, Key: fullKey, Size: size}
	if out != nil {
		res.ETag = aws.ToString(out.ETag)
	}
	span.SetAttributes(attribute.Int64("publish.bytes", size))
	p.logger.Info("published", "bucket", p.bucket, "key", fullKey, "bytes", size)
	return res, nil
}

// PublishAll publishes every document in key order. It stops at the first
// failure and returns the results of the uploads that succeeded before it.
func (p *Publisher) PublishAll(ctx context.Context, docs map[string]render.Document) ([]Result, error) {
	results := make([]Result, 0, len(docs))
	for _, key := range slices.Sorted(maps.Keys(docs)) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := p.Publish(ctx, key, docs[key])
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
