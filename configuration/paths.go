// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/dictionary/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// DataDirectory - absolute data directory for a configuration file
//
// "." selects the directory containing the configuration file, a
// blank or "~" directory is rejected and the result must be an
// existing directory
func DataDirectory(configurationFileName string, directory string) (string, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}

	switch directory {
	case "", "~":
		return "", fault.ErrInvalidPath
	case ".":
		directory, _ = filepath.Split(configurationFileName)
	}
	directory = EnsureAbsolute(filepath.Dir(configurationFileName), directory)

	fileInfo, err := os.Stat(directory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fault.ErrInvalidPath
	}
	return directory, nil
}

// PlainFileName - check that a file name has no directory part
func PlainFileName(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fault.ErrNotPlainFileName
	}
}
