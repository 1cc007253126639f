package domain

import (
	"io"
	"os"
)

// UploadedFile is one multipart part handed to the synthesis service.
type UploadedFile struct {
	Filename string
	Content  io.Reader
}

// ScratchFile is a request-scoped copy of an upload on local disk.
type ScratchFile struct {
	// Name is the sanitized original filename.
	Name string
	Path string
	Size int64
}

// Release removes the file from disk. A file already gone is not an error.
func (f *ScratchFile) Release() error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
