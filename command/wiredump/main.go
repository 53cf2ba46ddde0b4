// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/p2pwire/configuration"
	"github.com/bitmark-inc/p2pwire/fault"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Read(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
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
	log := logger.New("wiredump")
	log.Info("starting…")
	log.Infof("version: %s", version)

	vectors, err := selectVectors(theConfiguration.Vectors, arguments)
	if nil != err {
		log.Errorf("select vectors error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}

	failures := 0
	for _, v := range vectors {
		d, err := dumpVector(v)
		if isCodecDefect(err) {
			fault.Criticalf("vector: %q  command: %s  re-encoded bytes differ", v.Name, v.Command)
		}
		if nil != err {
			log.Errorf("vector: %q  command: %s  error: %s", v.Name, v.Command, err)
			fmt.Fprintf(os.Stderr, "%s: %q failed: %s\n", program, v.Name, err)
			failures += 1
			continue
		}
		log.Infof("vector: %q  command: %s  size: %d  checksum: %x", v.Name, v.Command, len(d.packed), d.checksum)
		log.Debugf("vector: %q  decoded: %s", v.Name, d.record)
		d.print(os.Stdout)
	}

	log.Infof("vectors: %d  failures: %d", len(vectors), failures)
	if failures > 0 {
		exitwithstatus.Message("%s: %d of %d vectors failed", program, failures, len(vectors))
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] --config-file=FILE [vector-name...]\n", program)
	fmt.Printf("       %s --version\n", program)
}
