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
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/record"
	"github.com/bitmark-inc/whisperd/rpc/certificate"
	"github.com/bitmark-inc/whisperd/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "record", "r", "count":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

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
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  record ADDRESS             (r)      - print a stored confession or comment as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  count                               - print the number of stored records\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
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

	default: // unknown commands fall through to data command
		return false
	}

	return true
}

// data command handler
// the storage pools are open so these commands can read the records
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "record", "r":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing address argument")
		}
		a, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in address: %s", err)
		}
		r, err := fetchRecord(a)
		if nil != err {
			exitwithstatus.Message("record: %s error: %s", a, err)
		}
		s, err := json.MarshalIndent(r, "", "  ")
		if nil != err {
			exitwithstatus.Message("record JSON error: %s", err)
		}
		fmt.Printf("%s\n", s)

	case "count":
		confessions, err := storage.Pool.Confessions.NewFetchCursor().Count()
		if nil != err {
			exitwithstatus.Message("count error: %s", err)
		}
		comments, err := storage.Pool.Comments.NewFetchCursor().Count()
		if nil != err {
			exitwithstatus.Message("count error: %s", err)
		}
		log.Infof("confessions: %d  comments: %d", confessions, comments)
		fmt.Printf("confessions: %d\ncomments:    %d\n", confessions, comments)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	return true
}

// either kind of record, decoded by its discriminator
func fetchRecord(a address.Address) (record.Record, error) {
	packed := storage.Pool.Confessions.Get(a.Bytes())
	if nil == packed {
		packed = storage.Pool.Comments.Get(a.Bytes())
	}
	if nil == packed {
		return nil, fault.AddressNotFound
	}
	return record.Packed(packed).Unpack()
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
