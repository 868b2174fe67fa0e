// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/nats-io/nats.go"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/events"
	"github.com/bitmark-inc/whisperd/ledger"
	"github.com/bitmark-inc/whisperd/rpc"
	"github.com/bitmark-inc/whisperd/storage"
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

	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands only inspect the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)

	deriver, err := makeDeriver(theConfiguration.Program)
	if nil != err {
		log.Criticalf("program identity: %q error: %s", theConfiguration.Program, err)
		exitwithstatus.Message("program identity: %q error: %s", theConfiguration.Program, err)
	}
	log.Infof("program: %s", deriver.Program())

	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	log.Info("initialise events")
	publisher, err := makePublisher(theConfiguration.Events)
	if nil != err {
		log.Criticalf("events initialise error: %s", err)
		exitwithstatus.Message("events initialise error: %s", err)
	}
	defer publisher.Close()

	pools := ledger.Pools{
		Confessions: storage.Pool.Confessions,
		Comments:    storage.Pool.Comments,
	}

	log.Info("initialise ledger")
	handle := ledger.New(logger.New("ledger"), pools, deriver, publisher, nil)

	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, theConfiguration.Chain, handle, pools)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// blank selects the built-in program identity
func makeDeriver(program string) (*address.Deriver, error) {
	if "" == program {
		return address.NewDefault(), nil
	}
	a, err := address.FromBase58(program)
	if nil != err {
		return nil, err
	}
	return address.New(a, address.IsOnCurve), nil
}

// blank url disables publishing
func makePublisher(configuration EventsType) (events.Publisher, error) {
	if "" == configuration.URL {
		return &events.NoopPublisher{}, nil
	}
	return events.NewNATSPublisher(configuration.URL, nats.Name(configuration.Name))
}
