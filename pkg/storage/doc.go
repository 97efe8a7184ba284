// Package storage provides the file system side of a mirror run.
//
// EnsureDir creates the target directory tree and is safe to call repeatedly.
// Manager saves image streams into that directory using a temporary file and
// an atomic rename, so a failed download never leaves a truncated image on disk.
// Files are addressed by name only: saving a name twice overwrites the first file.
//
// Usage:
//
//	manager, err := storage.NewManager("assets/scraped")
//	if err != nil {
//	    return err
//	}
//
//	n, err := manager.Save(body, "logo.png")
package storage
