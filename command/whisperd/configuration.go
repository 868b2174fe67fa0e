// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/chain"
	"github.com/bitmark-inc/whisperd/configuration"
	"github.com/bitmark-inc/whisperd/rpc/listeners"
	"github.com/bitmark-inc/whisperd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultWhisperDatabase  = chain.Whisper + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "whisperd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// EventsType - optional NATS server for ledger notifications
//
// blank url disables publishing
type EventsType struct {
	URL  string `gluamapper:"url" json:"url"`
	Name string `gluamapper:"name" json:"name"`
}

// Configuration - whole daemon setup
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Program       string       `gluamapper:"program" json:"program"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Events    EventsType                   `gluamapper:"events" json:"events"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Whisper,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultWhisperDatabase,
		},

		// certificate and private_key are PEM text, normally
		// loaded by the configuration file itself
		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Events: EventsType{
			Name: "whisperd",
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultWhisperDatabase {
		switch options.Chain {
		case chain.Whisper:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names then add
	// the directory prefix if one is given
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	if err := util.EnsureDirectories(options.Database.Directory, options.Logging.Directory); nil != err {
		return nil, err
	}

	return options, nil
}
