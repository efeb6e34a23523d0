// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dictionary/executor"
	"github.com/bitmark-inc/dictionary/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, nil)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	adjustLogLevel(theConfiguration, len(options["verbose"]) > 0, len(options["quiet"]) > 0)

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional "run DATASETS COMMANDS" overrides
	if len(arguments) > 0 {
		arguments = arguments[1:]
	}
	files := []*string{
		&theConfiguration.Datasets,
		&theConfiguration.Commands,
	}
	for i, a := range arguments {
		if i >= len(files) {
			exitwithstatus.Message("%s: too many arguments: %q", program, arguments[i:])
		}
		*files[i], err = filepath.Abs(a)
		if nil != err {
			exitwithstatus.Message("%s: file: %q  error: %s", program, a, err)
		}
	}

	log.Infof("datasets: %q", theConfiguration.Datasets)
	log.Infof("commands: %q", theConfiguration.Commands)

	ex := newExecutor()

	err = loadFile(ex, theConfiguration.Datasets)
	if nil != err {
		log.Criticalf("load datasets: %q  error: %s", theConfiguration.Datasets, err)
		exitwithstatus.Message("load datasets: %q  error: %s", theConfiguration.Datasets, err)
	}

	err = runFile(ex, theConfiguration.Commands, theConfiguration.Output)
	if nil != err {
		log.Criticalf("run commands: %q  error: %s", theConfiguration.Commands, err)
		exitwithstatus.Message("run commands: %q  error: %s", theConfiguration.Commands, err)
	}

	stats := ex.Statistics()
	log.Infof("datasets loaded: %d  commands: %d  invalid: %d", stats.Loaded, stats.Commands, stats.Invalid)
}

func newExecutor() *executor.Executor {
	return executor.New(logger.New("executor"))
}

func loadFile(ex *executor.Executor, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	return ex.Load(f)
}

// output to standard output when no file is given
func runFile(ex *executor.Executor, fileName string, outputFileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	var out io.Writer = os.Stdout
	if "" != outputFileName {
		o, err := os.Create(outputFileName)
		if nil != err {
			return err
		}
		defer o.Close()
		out = o
	}

	return ex.Run(f, out)
}
