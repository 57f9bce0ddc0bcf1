package media

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"ethograph/internal/config"
	"ethograph/internal/model"
	"ethograph/internal/normalize"
	"ethograph/pkg/log"
)

// Resolver turns stored media references into URLs the dashboard player can
// fetch. When an object store is configured, references into it are
// presigned per request; otherwise they fall back to the public rewrite.
type Resolver struct {
	conf   config.S3Config
	client *minio.Client
	logger *logrus.Entry
}

func NewResolver(conf config.S3Config) (*Resolver, error) {
	r := &Resolver{
		conf:   conf,
		logger: log.WithComponent(context.Background(), "media"),
	}
	if conf.AccessKeyID == "" {
		return r, nil
	}

	region := conf.Region
	if region == "" {
		region = "us-east-1"
	}
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure: conf.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client failed: %w", err)
	}
	r.client = client
	return r, nil
}

// CanPresign reports whether an object store is configured.
func (r *Resolver) CanPresign() bool {
	return r.client != nil
}

// Resolve maps a raw media reference to a fetchable URL. Object references,
// either s3:// URIs or their virtual-hosted HTTPS form, are presigned when a
// store is configured. Everything else passes through the public rewrite.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	bucket, key, ok := s3Ref(raw)
	if !ok || r.client == nil {
		return normalize.RewriteMediaURL(raw), nil
	}

	expiry := time.Duration(r.conf.PresignExpiry) * time.Second
	if expiry <= 0 {
		expiry = time.Hour
	}
	u, err := r.client.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object failed: %w", err)
	}
	return u.String(), nil
}

// ResolveEvents rewrites the media fields of events in place. The raw
// reference is left untouched so the link can be presigned again after the
// old one expires. Failures keep the rewritten URL and are only logged.
func (r *Resolver) ResolveEvents(ctx context.Context, events []*model.Event) {
	if r.client == nil {
		return
	}
	for _, ev := range events {
		src := ev.VideoUrl
		if ev.RawVideoUrl != "" {
			src = ev.RawVideoUrl
		}
		if src != "" {
			if resolved, err := r.Resolve(ctx, src); err == nil {
				ev.VideoUrl = resolved
			} else {
				r.logger.WithError(err).Warnf("resolve video url failed: %s", src)
			}
		}
		if ev.ThumbnailUrl != "" {
			if resolved, err := r.Resolve(ctx, ev.ThumbnailUrl); err == nil {
				ev.ThumbnailUrl = resolved
			} else {
				r.logger.WithError(err).Warnf("resolve thumbnail url failed: %s", ev.ThumbnailUrl)
			}
		}
	}
}

// s3Ref extracts the bucket and object key from an s3://bucket/key URI or
// its https://bucket.s3.amazonaws.com/key rewrite.
func s3Ref(raw string) (bucket, key string, ok bool) {
	s := strings.TrimSpace(raw)
	if rest, found := strings.CutPrefix(s, "s3://"); found {
		bucket, key, _ = strings.Cut(rest, "/")
		return bucket, key, bucket != "" && key != ""
	}

	rest, found := strings.CutPrefix(s, "https://")
	if !found {
		return "", "", false
	}
	host, path, _ := strings.Cut(rest, "/")
	bucket, found = strings.CutSuffix(host, ".s3.amazonaws.com")
	if !found || bucket == "" || path == "" {
		return "", "", false
	}
	path, _, _ = strings.Cut(path, "?")
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return bucket, path, path != ""
}
