// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

// Run - execute each line of r as a command writing results to w
//
// invalid commands are reported on w, only read and write
// failures are returned
func (e *Executor) Run(r io.Reader, w io.Writer) error {
	scanner := newScanner(r)
	for scanner.Scan() {
		err := e.Execute(scanner.Text(), w)
		if nil != err {
			return err
		}
	}
	return scanner.Err()
}

// Execute - run a single command line
func (e *Executor) Execute(line string, w io.Writer) error {
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return nil
	}

	e.commands.Increment()
	e.log.Debugf("command: %q", line)

	output, hasOutput, err := e.dispatch(fields[0], fields[1:])
	if nil != err {
		e.invalid.Increment()
		e.log.Warnf("command: %q  error: %s", line, err)
		output = InvalidCommand
		hasOutput = true
	}
	if !hasOutput {
		return nil
	}

	_, err = io.WriteString(w, output+"\n")
	if nil != err {
		e.log.Errorf("write error: %s", err)
		return fault.ErrOutputWriteFailed
	}
	return nil
}

// returns the output line, whether there is one, and any error
func (e *Executor) dispatch(command string, arguments []string) (string, bool, error) {

	switch command {

	case "print":
		if 1 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, err := e.lookup(arguments[0])
		if nil != err {
			return "", false, err
		}
		return d.String(), true, nil

	case "union", "intersect", "complement":
		if 3 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		a, err := e.lookup(arguments[1])
		if nil != err {
			return "", false, err
		}
		b, err := e.lookup(arguments[2])
		if nil != err {
			return "", false, err
		}

		var result *Dataset
		switch command {
		case "union":
			result = a.Union(b)
		case "intersect":
			result = a.Intersect(b)
		default:
			result = a.Complement(b)
		}
		result.ChangeName(arguments[0])
		e.Store(result)
		return "", false, nil

	case "insert":
		if 3 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		key, err := parseKey(arguments[1])
		if nil != err {
			return "", false, err
		}
		d, ok := e.Dataset(arguments[0])
		if !ok {
			d = dictionary.New[int, string](arguments[0])
			e.Store(d)
		}
		d.Insert(key, arguments[2])
		return "", false, nil

	case "erase":
		if 2 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, key, err := e.datasetAndKey(arguments)
		if nil != err {
			return "", false, err
		}
		d.Erase(key)
		return "", false, nil

	case "find":
		if 2 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, key, err := e.datasetAndKey(arguments)
		if nil != err {
			return "", false, err
		}
		value, err := d.Get(key)
		if fault.IsErrNotFound(err) {
			return NotFound, true, nil
		}
		return value, true, nil

	case "rename":
		if 2 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, err := e.lookup(arguments[0])
		if nil != err {
			return "", false, err
		}
		// an existing dataset called NEW is replaced
		e.datasets.Delete(arguments[0])
		d.ChangeName(arguments[1])
		e.Store(d)
		return "", false, nil

	case "list":
		if 0 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		names := e.Names()
		if 0 == len(names) {
			return dictionary.Empty, true, nil
		}
		return strings.Join(names, " "), true, nil

	case "tree":
		if 1 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, err := e.lookup(arguments[0])
		if nil != err {
			return "", false, err
		}
		if d.IsEmpty() {
			return dictionary.Empty, true, nil
		}
		s := strings.Builder{}
		d.Print(&s)
		return strings.TrimSuffix(s.String(), "\n"), true, nil

	case "count":
		if 1 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, err := e.lookup(arguments[0])
		if nil != err {
			return "", false, err
		}
		return strconv.Itoa(d.Count()), true, nil

	case "depth":
		if 2 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, key, err := e.datasetAndKey(arguments)
		if nil != err {
			return "", false, err
		}
		depth, err := d.Depth(key)
		if fault.IsErrNotFound(err) {
			return NotFound, true, nil
		}
		return strconv.FormatUint(uint64(depth), 10), true, nil

	case "level":
		if 2 != len(arguments) {
			return "", false, fault.ErrInvalidCommand
		}
		d, err := e.lookup(arguments[0])
		if nil != err {
			return "", false, err
		}
		depth, err := strconv.ParseUint(arguments[1], 10, 32)
		if nil != err {
			return "", false, fault.ErrInvalidKey
		}
		keys := d.Level(uint(depth))
		if 0 == len(keys) {
			return dictionary.Empty, true, nil
		}
		s := make([]string, len(keys))
		for i, k := range keys {
			s[i] = strconv.Itoa(k)
		}
		return strings.Join(s, " "), true, nil

	default:
		return "", false, fault.ErrInvalidCommand
	}
}

func (e *Executor) lookup(name string) (*Dataset, error) {
	d, ok := e.Dataset(name)
	if !ok {
		return nil, fault.ErrDatasetNotFound
	}
	return d, nil
}

func (e *Executor) datasetAndKey(arguments []string) (*Dataset, int, error) {
	d, err := e.lookup(arguments[0])
	if nil != err {
		return nil, 0, err
	}
	key, err := parseKey(arguments[1])
	if nil != err {
		return nil, 0, err
	}
	return d, key, nil
}
