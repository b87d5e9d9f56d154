// Package storage provides an abstraction over the directories the resolver
// reads and writes lookup tables in.
//
// The build step writes one generated table per language, the runtime reads
// generated tables and translation tables back. Both go through the Client
// interface so tests can substitute the mock in core/storage/mocks.
//
// # Operations
//
//   - RootExists: Verifies the store directory is present.
//   - GetObject: Reads a whole object (ErrNotFound when missing).
//   - PutObject: Atomically replaces an object.
//   - ListObjects: Lists objects with a given extension.
//
// # Usage
//
//	client, err := storage.NewClient("data/database")
//	data, err := client.GetObject(ctx, "en.json")
package storage
