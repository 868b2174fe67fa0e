// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/counter"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/util"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - JSON-RPC over TLS
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := rpcListener{
		log:            log,
		maxConnections: configuration.MaximumConnections,
		server:         server,
		count:          count,
		tlsConfig:      tlsConfig,
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	var err error
	r.listenIPAndPort, r.ipType, err = parseListenAddress(configuration.Listen, r.log)
	if nil != err {
		return nil, err
	}

	return &r, nil
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Close - stop accepting
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	return nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Errorf("rpc.server terminated: accept error: %s", err)
			break
		}
		if !count.Acquire(maximumConnections) {
			log.Warnf("connection refused from: %s  limit: %d", conn.RemoteAddr(), maximumConnections)
			_ = conn.Close()
			continue
		}
		go func() {
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			count.Release()
		}()
	}
	_ = listen.Close()
	log.Error("RPC accept terminated")
}

// canonicalise the listen addresses and pick the network for each
//
// "*:PORT" listens on both tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	listen := make([]string, len(addrs))
	network := make([]string, len(addrs))
	for i, addr := range addrs {
		if strings.HasPrefix(addr, "*:") {
			addr = "[::]" + addr[1:]
			network[i] = "tcp"
		}

		canonical, err := util.CanonicalIPandPort(addr)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", addr, err)
			return nil, nil, err
		}
		listen[i] = canonical

		if "" == network[i] {
			if strings.HasPrefix(canonical, "[") {
				network[i] = "tcp6"
			} else {
				network[i] = "tcp4"
			}
		}
	}

	return listen, network, nil
}
