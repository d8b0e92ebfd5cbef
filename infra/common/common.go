package common

import (
	"crypto/md5"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// skipDirs never affect the built image.
var skipDirs = map[string]bool{
	".git":      true,
	"infra":     true,
	"_examples": true,
}

// GenerateHash fingerprints every regular file under root so the image tag
// only changes when the sources do.
func GenerateHash(root string) (string, error) {
	var hash string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		fh, err := fileHash(path)
		if err != nil {
			return err
		}
		hash = combine(hash, fh)
		return nil
	})

	return hash, err
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func combine(acc, next string) string {
	h := md5.New()
	io.WriteString(h, acc+next)
	return fmt.Sprintf("%x", h.Sum(nil))
}
