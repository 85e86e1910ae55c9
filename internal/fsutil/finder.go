// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// pageExtensions are the file extensions recognized as host pages.
var pageExtensions = []string{".html", ".htm"}

// FindPages resolves the given path to the list of page files it names.
// A file path returns itself; a directory is searched recursively for
// files with a recognized page extension. Results are in lexical order.
func FindPages(rootPath string) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat page path %s: %w", rootPath, err)
	}

	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	var pages []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasPageExtension(d.Name()) {
			pages = append(pages, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return pages, nil
}

func hasPageExtension(name string) bool {
	for _, ext := range pageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
