// Package fileutil provides common file operation utilities.
package fileutil

import (
	"crypto/md5" //nolint:gosec // checksums identify duplicate uploads, not secrets
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyFile copies a file from src to dst, creating parent directories as needed.
func CopyFile(src, dst string) (retErr error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := srcFile.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()

	if err = os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return err
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dstFile.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()

	_, err = io.Copy(dstFile, srcFile)
	return err
}

// MoveFile moves a file from src to dst. Rename is attempted first; when src
// and dst are on different filesystems it falls back to copy and remove.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return err
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// Checksum returns the hex-encoded MD5 digest of the file at path.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	h := md5.New() //nolint:gosec // checksums identify duplicate uploads, not secrets
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SafeJoin joins base and rel, rejecting paths that would escape base.
func SafeJoin(base, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path must be relative: %q", rel)
	}

	joined := filepath.Join(base, rel)

	cleanBase := filepath.Clean(base)
	if joined != cleanBase && !strings.HasPrefix(joined, cleanBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes base directory: %q", rel)
	}

	return joined, nil
}

// ErrNoFreeName is returned when no free file name could be found.
var ErrNoFreeName = errors.New("no free file name available")

// maxNameAttempts bounds the numeric tiebreak when searching for a free stem.
const maxNameAttempts = 1000

// FreeStem returns the first name derived from stem that has no existing
// file in any of dirs for any of exts. The stem itself is tried first, then
// stem1, stem2 and so on.
func FreeStem(stem string, dirs, exts []string) (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		candidate := stem
		if i > 0 {
			candidate = fmt.Sprintf("%s%d", stem, i)
		}

		if !stemTaken(candidate, dirs, exts) {
			return candidate, nil
		}
	}
	return "", ErrNoFreeName
}

func stemTaken(stem string, dirs, exts []string) bool {
	for _, dir := range dirs {
		for _, ext := range exts {
			if _, err := os.Stat(filepath.Join(dir, stem+ext)); err == nil {
				return true
			}
		}
	}
	return false
}
