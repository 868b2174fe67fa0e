// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken from directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// EnsureFileExists - true if anything exists at name
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectories - create any missing directories, owner access only
func EnsureDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}
