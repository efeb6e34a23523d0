// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

// longest accepted input line
const maximumLineLength = 64 * 1024 * 1024

// line scanner without the default 64 KiB token limit
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maximumLineLength)
	return scanner
}

// Load - read datasets, one per non-blank line
//
// a line whose name is already present replaces that dataset
func (e *Executor) Load(r io.Reader) error {
	scanner := newScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		fields := strings.Fields(scanner.Text())
		if 0 == len(fields) {
			continue
		}

		d, err := parseDataset(fields)
		if nil != err {
			e.log.Errorf("dataset line: %d  error: %s", lineNumber, err)
			return err
		}

		e.Store(d)
		e.loaded.Increment()
		e.log.Debugf("loaded: %q  items: %d", d.Name(), d.Count())
	}
	return scanner.Err()
}

// name followed by key/value pairs
func parseDataset(fields []string) (*Dataset, error) {
	pairs := fields[1:]
	if 0 != len(pairs)%2 {
		return nil, fault.ErrMissingValue
	}

	d := dictionary.New[int, string](fields[0])
	for i := 0; i < len(pairs); i += 2 {
		key, err := parseKey(pairs[i])
		if nil != err {
			return nil, err
		}
		d.Insert(key, pairs[i+1])
	}
	return d, nil
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return key, nil
}
