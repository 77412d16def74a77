package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListSourceFiles resolves path to the source files to analyze: the path
// itself when it names a file with the given extension, otherwise every
// matching file under the directory, sorted for deterministic order.
func ListSourceFiles(path, ext string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !strings.HasSuffix(path, ext) {
			return nil, fmt.Errorf("%s: not a %s file", path, ext)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ext) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// artifactPath derives the output artifact path for a source file: the
// extension replaced by suffix+".xml", relocated under outDir when set.
func artifactPath(srcPath, ext, suffix, outDir string) string {
	base := strings.TrimSuffix(srcPath, ext)
	if outDir != "" {
		base = filepath.Join(outDir, filepath.Base(base))
	}
	return base + suffix + ".xml"
}
