// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/rpc/handler"
)

const (
	httpsLogName       = "https_rpc"
	minConnectionCount = 1
	readWriteTimeout   = 10 * time.Second
	keepAlivePeriod    = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
	AllowOrigins       []string            `gluamapper:"allow_origins" json:"allow_origins"`
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	listenIPAndPort []string
	tlsConfig       *tls.Config
	handler         http.Handler
	servers         []*http.Server
}

// NewHTTPS - the HTTPS gateway, nil if no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	// create access control
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("%s: allow: %q  error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	listen, _, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	h := httpsListener{
		log:             log,
		listenIPAndPort: listen,
		tlsConfig:       tlsConfig,
		handler:         handler.Router(hdlr, configuration.AllowOrigins),
	}

	return &h, nil
}

// Serve - start every listener in the background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		s := &http.Server{
			Addr:           listen,
			Handler:        h.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}

		cfg := h.tlsConfig.Clone()
		cfg.NextProtos = []string{"http/1.1"}

		ln, err := net.Listen("tcp", listen)
		if err != nil {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}
		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)

		h.servers = append(h.servers, s)
		go func() {
			err := s.Serve(tlsListener)
			if http.ErrServerClosed != err {
				h.log.Errorf("%s terminated: %s", httpsLogName, err)
			}
		}()
	}

	return nil
}

// Close - stop every server
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
	return nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}
