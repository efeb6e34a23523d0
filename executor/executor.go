// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dictionary/avl"
	"github.com/bitmark-inc/dictionary/dictionary"
	"github.com/bitmark-inc/dictionary/fault"
)

// output tokens
const (
	InvalidCommand = "<INVALID COMMAND>"
	NotFound       = "<NOT FOUND>"
)

// Dataset - the kind of dictionary held in the catalogue
type Dataset = dictionary.Dictionary[int, string]

// Executor - a catalogue of datasets keyed by name
type Executor struct {
	log      *logger.L
	datasets *avl.Tree[string, *Dataset]

	commands counter
	invalid  counter
	loaded   counter
}

// Statistics - snapshot of the executor counters
type Statistics struct {
	Commands uint64 `json:"commands"`
	Invalid  uint64 `json:"invalid"`
	Loaded   uint64 `json:"loaded"`
}

// New - create an empty executor logging to the given channel
func New(log *logger.L) *Executor {
	if nil == log {
		fault.Panic("executor: nil logger")
	}
	return &Executor{
		log:      log,
		datasets: avl.NewOrdered[string, *Dataset](),
	}
}

// Dataset - fetch a dataset by name
func (e *Executor) Dataset(name string) (*Dataset, bool) {
	node := e.datasets.Search(name)
	if nil == node {
		return nil, false
	}
	return node.Value(), true
}

// Store - add or replace a dataset under its own name
func (e *Executor) Store(d *Dataset) {
	e.datasets.Insert(d.Name(), d)
}

// Names - dataset names in ascending order
func (e *Executor) Names() []string {
	names := make([]string, 0, e.datasets.Count())
	for name := range e.datasets.All() {
		names = append(names, name)
	}
	return names
}

// Statistics - current counter values
func (e *Executor) Statistics() Statistics {
	return Statistics{
		Commands: e.commands.Uint64(),
		Invalid:  e.invalid.Uint64(),
		Loaded:   e.loaded.Uint64(),
	}
}
