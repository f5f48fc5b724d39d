// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the registry can be published to a bucket
// instead of a local directory. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface only exposes the read operations the server uses,
// which keeps the mock in core/storage/mocks small.
//
//   - BucketExists: Verifies access to the target bucket at startup.
//   - GetObject: Retrieves a registry file as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
