// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "wire-cli"
	app.Usage = "decode and inspect share chain peer messages"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a message payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "command, c",
					Value: "",
					Usage: "*message command `NAME` (tx for a bare transaction)",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "*payload `HEX`",
				},
				cli.BoolFlag{
					Name:  "ignore-trailing, i",
					Usage: " allow bytes after the payload",
				},
				cli.BoolFlag{
					Name:  "go, g",
					Usage: " print the payload as a Go byte slice literal",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "checksum",
			Usage:     "header checksum of a payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "*payload `HEX`",
				},
			},
			Action: runChecksum,
		},
		{
			Name:      "txid",
			Usage:     "transaction and witness transaction ids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "*transaction `HEX`",
				},
			},
			Action: runTxID,
		},
		{
			Name:      "p2pkh",
			Usage:     "pay to public key hash output script",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+base58check `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+public key hash `HEX`",
				},
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "+public key `HEX`",
				},
			},
			Action: runP2PKH,
		},
		{
			Name:      "address",
			Usage:     "encode a peer address record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "peer, p",
					Value: "",
					Usage: "*peer `HOST:PORT`",
				},
				cli.Uint64Flag{
					Name:  "services, s",
					Value: 0,
					Usage: " service `BITS`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "merkle",
			Usage:     "merkle root of transaction ids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "txid, t",
					Usage: "*transaction id `HEX`, repeat in block order",
				},
			},
			Action: runMerkle,
		},
		{
			Name:   "commands",
			Usage:  "list the known message commands",
			Action: runCommands,
		},
		{
			Name:  "version",
			Usage: "display wire-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
