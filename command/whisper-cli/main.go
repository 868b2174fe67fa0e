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

	"github.com/bitmark-inc/whisperd/chain"
)

type metadata struct {
	connect string
	key     string
	testnet bool
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
	app.Name = "whisper-cli"
	app.Usage = "confessions, likes and comments on a whisperd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "network, n",
			Value:  chain.Whisper,
			Usage:  " connect to whisperd `NETWORK` [whisper|testing|local]",
			EnvVar: "WHISPER_NETWORK",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " whisperd JSON-RPC `HOST:PORT`",
			EnvVar: "WHISPER_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " base58 private `KEY` used to sign",
			EnvVar: "WHISPER_PRIVATE_KEY",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key and its account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "create",
			Usage:     "publish a confession signed by the current key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*content `URI`",
				},
				cli.BoolFlag{
					Name:  "packed, p",
					Usage: " print the signed instruction as hex instead of sending it",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "like",
			Usage:     "like a confession",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "confession, a",
					Value: "",
					Usage: "*confession `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "packed, p",
					Usage: " print the signed instruction as hex instead of sending it",
				},
			},
			Action: runLike,
		},
		{
			Name:      "comment",
			Usage:     "comment on a confession",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "confession, a",
					Value: "",
					Usage: "*confession `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*content `URI`",
				},
				cli.BoolFlag{
					Name:  "packed, p",
					Usage: " print the signed instruction as hex instead of sending it",
				},
			},
			Action: runComment,
		},
		{
			Name:      "submit",
			Usage:     "send an instruction printed earlier by --packed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "instruction, i",
					Value: "",
					Usage: "*packed `HEX` instruction",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "confession",
			Usage:     "display a stored confession",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*confession `ADDRESS`",
				},
			},
			Action: runConfession,
		},
		{
			Name:      "comment-info",
			Usage:     "display a stored comment with its confession",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*comment `ADDRESS`",
				},
			},
			Action: runCommentInfo,
		},
		{
			Name:      "derive",
			Usage:     "compute confession and comment addresses",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "author, A",
					Value: "",
					Usage: " author `ACCOUNT` [default: current key]",
				},
				cli.StringFlag{
					Name:  "commenter, C",
					Value: "",
					Usage: " commenter `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "local, l",
					Usage: " derive with the built-in program instead of asking whisperd",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "info",
			Usage:     "display whisperd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "watch",
			Usage:     "print ledger events published on NATS",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "nats, s",
					Value:  "",
					Usage:  "*NATS server `URL`",
					EnvVar: "WHISPERD_NATS_URL",
				},
				cli.StringFlag{
					Name:  "topic, t",
					Value: "",
					Usage: " subject to follow `TOPIC` [default: all ledger events]",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 0,
					Usage: " stop after `N` events, 0 = run until interrupted",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display whisper-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		if !chain.Valid(network) {
			return ErrInvalidNetwork
		}

		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				key:     c.GlobalString("key"),
				testnet: chain.IsTesting(network),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}

		return nil
	}

	return app
}
