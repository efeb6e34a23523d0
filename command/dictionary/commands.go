// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "run", "start", "config-test", "cfg":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  run [DATASETS [COMMANDS]]  (start)  - load datasets and execute commands\n")
		fmt.Printf("                                        files default to the configuration values\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("command file lines:\n\n")
		fmt.Printf("  print NAME\n")
		fmt.Printf("  union|intersect|complement NEW A B\n")
		fmt.Printf("  insert NAME KEY VALUE\n")
		fmt.Printf("  erase NAME KEY\n")
		fmt.Printf("  find NAME KEY\n")
		fmt.Printf("  rename OLD NEW                        - replaces any existing NEW\n")
		fmt.Printf("  count NAME\n")
		fmt.Printf("  tree NAME\n")
		fmt.Printf("  depth NAME KEY\n")
		fmt.Printf("  level NAME DEPTH\n")
		fmt.Printf("  list\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to run
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}
