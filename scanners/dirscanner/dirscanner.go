package dirscanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
)

const DefaultPattern = "*.py"

type DirScanner struct {
	pattern string
}

func New(pattern string) *DirScanner {
	return &DirScanner{
		pattern: pattern,
	}
}

// Scan walks root in lexical order and returns every non-directory entry
// whose base name matches the pattern. Directories that cannot be read are
// skipped; they are returned together as a *multierror.Error alongside the
// files that were found. A symlinked root is followed; symlinked
// directories beneath it are not.
func (s *DirScanner) Scan(logger lager.Logger, root string) ([]string, error) {
	logger = logger.Session("dir-scanner", lager.Data{"root": root, "pattern": s.pattern})
	logger.Debug("starting")

	if _, err := filepath.Match(s.pattern, ""); err != nil {
		return nil, err
	}

	var (
		files   []string
		skipped error
	)

	walkErr := filepath.WalkDir(followable(root), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry == nil {
				return err
			}

			logger.Info("skipping", lager.Data{"path": path, "error": err.Error()})
			skipped = multierror.Append(skipped, err)

			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		if matched, _ := filepath.Match(s.pattern, entry.Name()); matched {
			files = append(files, path)
		}

		return nil
	})
	if walkErr != nil {
		logger.Error("failed", walkErr)
		return nil, walkErr
	}

	logger.Debug("done", lager.Data{"files": len(files)})
	return files, skipped
}

// followable appends a separator so that WalkDir's Lstat of the root
// resolves a symlink. Paths joined beneath it come out clean.
func followable(root string) string {
	if root == "" {
		root = "."
	}

	if strings.HasSuffix(root, string(os.PathSeparator)) {
		return root
	}

	return root + string(os.PathSeparator)
}
