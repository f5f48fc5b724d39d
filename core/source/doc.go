// Package source abstracts where registry files come from.
//
// The server treats every registry file as an opaque blob addressed by a
// slash-separated name relative to the registry root (for example
// "public/r/button.json"). A Source turns that name into bytes.
//
// # Drivers
//
//   - FS: a local directory (the default). Reads go through os.OpenInRoot.
//   - Bucket: an S3/MinIO bucket via core/storage, keys are prefix + name.
//   - Table: a database table (path, content) via GORM.
//
// Every driver rejects names that are not clean relative paths and maps its own
// "missing" error to ErrNotFound, so callers only need errors.Is.
package source
