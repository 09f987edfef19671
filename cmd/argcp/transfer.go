// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func transfer(op operation, src, dst string) error {
	fi, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("omitting directory %q", src)
	}
	switch op {
	case opCopy:
		return copyFile(src, dst)
	case opMove:
		return moveFile(src, dst)
	case opLink:
		return linkFile(src, dst)
	default:
		return fmt.Errorf("unknown operation %v", op)
	}
}

// copyFile copies src to dst. It writes to a temporary file next to dst and
// renames it into place, so dst may be in use.
func copyFile(src, dst string) (err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcStat, err := srcFile.Stat()
	if err != nil {
		return err
	}

	tempDst := dst + ".tmp"
	dstFile, err := os.OpenFile(tempDst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcStat.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		dstFile.Close()
		if err == nil {
			err = os.Rename(tempDst, dst)
		}
		if err != nil {
			os.Remove(tempDst)
		}
	}()

	if _, err = io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Sync()
}

// moveFile renames src to dst when both are on the same filesystem and
// falls back to copy and remove otherwise.
func moveFile(src, dst string) error {
	if sameDevice(src, filepath.Dir(dst)) {
		if err := os.Rename(src, dst); err == nil {
			return nil
		}
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// linkFile hard links dst to src, replacing dst if it exists.
func linkFile(src, dst string) error {
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Link(src, dst)
}
