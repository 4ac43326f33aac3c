package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/internal/fileutil"
)

// WriteFiles writes all generated files to the specified output directory.
// The directory is created if it doesn't exist. File names may contain
// subdirectories but must stay inside outputDir.
func (r *Result) WriteFiles(outputDir string) error {
	if err := os.MkdirAll(outputDir, fileutil.DirMode); err != nil {
		return &docerrors.WriteError{Path: outputDir, Cause: fmt.Errorf("failed to create output directory: %w", err)}
	}

	for _, file := range r.Files {
		filePath, err := fileutil.JoinWithin(outputDir, file.Name)
		if err != nil {
			return &docerrors.WriteError{Path: file.Name, Cause: err}
		}
		if err := os.MkdirAll(filepath.Dir(filePath), fileutil.DirMode); err != nil {
			return &docerrors.WriteError{Path: filePath, Cause: err}
		}
		if err := os.WriteFile(filePath, file.Content, fileutil.ReadableByAll); err != nil {
			return &docerrors.WriteError{Path: filePath, Cause: err}
		}
	}

	return nil
}
