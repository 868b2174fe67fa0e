// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const uploadTimeout = 5 * time.Minute

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "output", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "program", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "s3-bucket", HasArg: getoptions.REQUIRED_ARGUMENT},
		{Long: "s3-key", HasArg: getoptions.REQUIRED_ARGUMENT},
		{Long: "s3-region", HasArg: getoptions.REQUIRED_ARGUMENT},
		{Long: "s3-endpoint", HasArg: getoptions.REQUIRED_ARGUMENT},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--program=ADDRESS] [--output=FILE] [--s3-bucket=B --s3-key=K [--s3-region=R] [--s3-endpoint=URL]] --file=FILE", program)
	}

	verbose := len(options["verbose"]) > 0
	filename := options["file"][0]

	deriver := address.NewDefault()
	if len(options["program"]) > 0 {
		p, err := address.FromBase58(options["program"][0])
		if nil != err {
			exitwithstatus.Message("%s: program: %q error: %s", program, options["program"][0], err)
		}
		deriver = address.New(p, address.IsOnCurve)
	}

	bucket := lastOption(options, "s3-bucket")
	key := lastOption(options, "s3-key")
	if ("" == bucket) != ("" == key) {
		exitwithstatus.Message("%s: both --s3-bucket and --s3-key are required for upload", program)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "whisper-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("dumpdb")

	// start of main processing
	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	// everything is buffered when it must also be uploaded
	var buffer bytes.Buffer
	writers := []io.Writer{}
	if "" != bucket {
		writers = append(writers, &buffer)
	}

	output := lastOption(options, "output")
	switch output {
	case "", "-":
		if "" == bucket || "-" == output {
			writers = append(writers, os.Stdout)
		}
	default:
		fd, err := os.Create(output)
		if nil != err {
			exitwithstatus.Message("%s: creating: %q error: %s", program, output, err)
		}
		defer fd.Close()
		writers = append(writers, fd)
	}

	t, err := dump(io.MultiWriter(writers...), storage.Pool.Confessions, storage.Pool.Comments, deriver)
	if nil != err {
		exitwithstatus.Message("%s: dump error: %s", program, err)
	}
	log.Infof("dumped confessions: %d  comments: %d  bad: %d", t.Confessions, t.Comments, t.Bad)
	if verbose {
		fmt.Fprintf(os.Stderr, "confessions: %d  comments: %d  bad: %d\n", t.Confessions, t.Comments, t.Bad)
	}

	if "" == bucket {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	d, err := newS3Destination(ctx, bucket, key, lastOption(options, "s3-region"), lastOption(options, "s3-endpoint"))
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
	if err := upload(ctx, d, buffer.Bytes()); nil != err {
		log.Errorf("upload error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
	log.Infof("uploaded %d bytes to s3://%s/%s", buffer.Len(), bucket, key)
}

func upload(ctx context.Context, d destination, data []byte) error {
	if 0 == len(data) {
		return fmt.Errorf("nothing to upload")
	}
	return d.Write(ctx, data)
}

func lastOption(options map[string][]string, name string) string {
	values := options[name]
	if 0 == len(values) {
		return ""
	}
	return values[len(values)-1]
}
