// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDatasetNotFound       = NotFoundError("dataset not found")
	ErrEndIterator           = InvalidError("dereference of end iterator")
	ErrEraseAbsentNode       = InvalidError("erase of absent node")
	ErrInvalidCommand        = InvalidError("invalid command")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPath           = InvalidError("invalid path")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingValue          = InvalidError("missing value for key")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotPlainFileName      = InvalidError("file is not a plain name")
	ErrOutputWriteFailed     = ProcessError("output write failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
