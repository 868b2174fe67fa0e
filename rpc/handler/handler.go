// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/counter"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/rpc/comment"
	"github.com/bitmark-inc/whisperd/rpc/confession"
	"github.com/bitmark-inc/whisperd/rpc/node"
	"github.com/bitmark-inc/whisperd/rpc/server"
)

// Handler - HTTPS endpoints
type Handler interface {
	RPC(*gin.Context)
	Confession(*gin.Context)
	Comment(*gin.Context)
	Derive(*gin.Context)
	Details(*gin.Context)
	Root(*gin.Context)
	SetAllow(map[string][]*net.IPNet)
}

// internalConnection - lets the rpc server read a request body and write the response
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	services           *server.Services
	count              counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
}

// New - create the HTTPS handlers
func New(log *logger.L, services *server.Services, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             services.Server(),
		services:           services,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - networks permitted to reach the restricted endpoints
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(c *gin.Context) {
	sendError(c, http.StatusNotFound, "not found")
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(c *gin.Context) {
	if !h.count.Acquire(h.maximumConnections) {
		sendError(c, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		return
	}
	defer h.count.Release()

	codec := jsonrpc.NewServerCodec(&internalConnection{in: c.Request.Body, out: c.Writer})
	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Warnf("rpc error: %s", err)
		sendError(c, http.StatusInternalServerError, "internal server error")
	}
}

// Confession - GET one confession
func (h *handler) Confession(c *gin.Context) {
	a, err := address.FromBase58(c.Param("address"))
	if nil != err {
		sendFault(c, err)
		return
	}

	var reply confession.Reply
	err = h.services.Confession.Get(&confession.GetArguments{Address: a}, &reply)
	if nil != err {
		sendFault(c, err)
		return
	}
	c.JSON(http.StatusOK, &reply)
}

// Comment - GET one comment
func (h *handler) Comment(c *gin.Context) {
	a, err := address.FromBase58(c.Param("address"))
	if nil != err {
		sendFault(c, err)
		return
	}

	var reply comment.GetReply
	err = h.services.Comment.Get(&comment.GetArguments{Address: a}, &reply)
	if nil != err {
		sendFault(c, err)
		return
	}
	c.JSON(http.StatusOK, &reply)
}

// Derive - GET the addresses for an author and an optional commenter
//
// query parameters:
//
//	commenter=<account>   [base58 account]
func (h *handler) Derive(c *gin.Context) {
	author, err := account.AccountFromBase58(c.Param("author"))
	if nil != err {
		sendFault(c, err)
		return
	}

	arguments := confession.DeriveArguments{
		Author: author,
	}
	if s := c.Query("commenter"); "" != s {
		arguments.Commenter, err = account.AccountFromBase58(s)
		if nil != err {
			sendFault(c, err)
			return
		}
	}

	var reply confession.DeriveReply
	err = h.services.Confession.Derive(&arguments, &reply)
	if nil != err {
		sendFault(c, err)
		return
	}
	c.JSON(http.StatusOK, &reply)
}

// Details - GET the same data as Node.Info
// (restricted to the "details" allow list)
func (h *handler) Details(c *gin.Context) {
	if !h.allowed("details", c.Request.RemoteAddr) {
		h.log.Warnf("Deny access: %q", c.Request.RemoteAddr)
		sendError(c, http.StatusForbidden, "forbidden")
		return
	}

	var reply node.InfoReply
	err := h.services.Node.Info(&node.InfoArguments{}, &reply)
	if nil != err {
		sendFault(c, err)
		return
	}
	c.JSON(http.StatusOK, &reply)
}

func (h *handler) allowed(path string, remoteAddr string) bool {
	last := strings.LastIndex(remoteAddr, ":")
	if last < 0 {
		return false
	}
	ip := net.ParseIP(strings.Trim(remoteAddr[:last], "[]"))
	if nil == ip {
		return false
	}
	for _, network := range h.allow[path] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func sendError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, &eType{
		Code:  code,
		Error: message,
	})
}

// map a fault class to an HTTP status
func sendFault(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case fault.IsErrNotFound(err):
		code = http.StatusNotFound
	case fault.IsErrInvalid(err), fault.IsErrLength(err):
		code = http.StatusBadRequest
	case fault.IsErrExists(err):
		code = http.StatusConflict
	case fault.IsErrAuthorisation(err):
		code = http.StatusUnauthorized
	}
	sendError(c, code, err.Error())
}
