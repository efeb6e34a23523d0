// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dictionary/configuration"
)

// basic defaults (files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatasetsFile = "datasets.txt"
	defaultCommandsFile = "commands.txt"
	defaultOutputFile   = "" // standard output

	defaultLogDirectory = "log"
	defaultLogFile      = "dictionary.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Datasets      string               `gluamapper:"datasets" json:"datasets"`
	Commands      string               `gluamapper:"commands" json:"commands"`
	Output        string               `gluamapper:"output" json:"output"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// the mapper fills maps in place so the defaults must not be shared
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Datasets:      defaultDatasetsFile,
		Commands:      defaultCommandsFile,
		Output:        defaultOutputFile,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	options.DataDirectory, err = configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Datasets,
		&options.Commands,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.Output {
		options.Output = configuration.EnsureAbsolute(options.DataDirectory, options.Output)
	}

	if err := configuration.PlainFileName(options.Logging.File); nil != err {
		return nil, err
	}

	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// force the default log level from the command line options
func adjustLogLevel(options *Configuration, verbose bool, quiet bool) {
	level := ""
	switch {
	case quiet:
		level = "critical"
	case verbose:
		level = "debug"
	default:
		return
	}
	levels := make(map[string]string, len(options.Logging.Levels)+1)
	for tag, l := range options.Logging.Levels {
		levels[tag] = l
	}
	levels[logger.DefaultTag] = level
	options.Logging.Levels = levels
}
