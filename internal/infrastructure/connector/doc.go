// Package connector provides image store implementations: a local
// directory and an S3 compatible object store reached through minio-go.
package connector
