// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/counter"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/ledger"
	"github.com/bitmark-inc/whisperd/rpc/certificate"
	"github.com/bitmark-inc/whisperd/rpc/handler"
	"github.com/bitmark-inc/whisperd/rpc/listeners"
	"github.com/bitmark-inc/whisperd/rpc/server"
)

const (
	tlsName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active JSON-RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS servers
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, chainName string, handle ledger.Handle, pools ledger.Pools) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	services := server.NewServices(log, version, chainName, handle, pools, &connectionCountRPC)

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		services.Server(),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			closeAll()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		hdlr := handler.New(log, services, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			closeAll()
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			closeAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all servers
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// must hold the lock
func closeAll() {
	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil
}
