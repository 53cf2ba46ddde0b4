// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/message"
	"github.com/bitmark-inc/p2pwire/util"
)

type decodeResult struct {
	Command  string      `json:"command"`
	Size     int         `json:"size"`
	Trailing int         `json:"trailing,omitempty"`
	Checksum string      `json:"checksum"`
	Payload  interface{} `json:"payload"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	command := c.String("command")
	if "" == command {
		return ErrMissingOption
	}

	payload, err := hexOption(c, "hex")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "command: %s\n", command)
		fmt.Fprintf(m.e, "bytes: %s\n", util.DecimalBytes(payload))
	}

	r, trailing, err := message.Decode(command, payload, c.Bool("ignore-trailing"))
	if nil != err {
		return err
	}

	if c.Bool("go") {
		fmt.Fprintf(m.w, "%s\n", util.FormatBytes(command, payload[:len(payload)-trailing]))
		return nil
	}

	checksum := message.Checksum(payload[:len(payload)-trailing])
	return printJson(m.w, decodeResult{
		Command:  command,
		Size:     len(payload) - trailing,
		Trailing: trailing,
		Checksum: hex.EncodeToString(checksum[:]),
		Payload:  jsonValue(r),
	})
}

func runChecksum(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := hexOption(c, "hex")
	if nil != err {
		return err
	}

	checksum := message.Checksum(payload)
	return printJson(m.w, map[string]string{
		"checksum": hex.EncodeToString(checksum[:]),
	})
}

func runCommands(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	for _, command := range message.Commands() {
		fmt.Fprintf(m.w, "%s\n", command)
	}
	return nil
}

// required hex option, an empty payload is allowed only as "-"
func hexOption(c *cli.Context, name string) ([]byte, error) {
	s := c.String(name)
	switch s {
	case "":
		return nil, ErrMissingOption
	case "-":
		return []byte{}, nil
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return b, nil
}
