// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/message"
	"github.com/bitmark-inc/p2pwire/util"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "wiredump.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// Vector - one reference payload
type Vector struct {
	Name           string `gluamapper:"name" json:"name"`
	Command        string `gluamapper:"command" json:"command"`
	Packed         string `gluamapper:"packed" json:"packed"`
	Checksum       string `gluamapper:"checksum" json:"checksum"`
	IgnoreTrailing bool   `gluamapper:"ignore_trailing" json:"ignore_trailing"`

	data     []byte
	checksum []byte
}

// Configuration - contents of a vectors file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Vectors       []Vector             `gluamapper:"vectors" json:"vectors"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Read - read decode and verify the configuration
func Read(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseVectorsFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	for i := range options.Vectors {
		if err := options.Vectors[i].validate(); nil != err {
			return nil, fmt.Errorf("vector[%d]: %q: %s", i, options.Vectors[i].Name, err)
		}
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// check the command and decode the hex fields
func (v *Vector) validate() error {
	if _, err := message.LookupType(v.Command); nil != err {
		return err
	}

	if "" == v.Packed {
		return fault.ErrEmptyPackedData
	}
	data, err := hex.DecodeString(v.Packed)
	if nil != err {
		return fault.ErrInvalidHex
	}
	v.data = data

	if "" != v.Checksum {
		checksum, err := hex.DecodeString(v.Checksum)
		if nil != err || message.ChecksumLength != len(checksum) {
			return fault.ErrInvalidHex
		}
		v.checksum = checksum
	}
	return nil
}

// Data - the decoded payload bytes
func (v Vector) Data() []byte {
	return v.data
}

// ExpectedChecksum - decoded checksum or nil if none was configured
func (v Vector) ExpectedChecksum() []byte {
	return v.checksum
}
