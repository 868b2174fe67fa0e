// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/chain"
	"github.com/bitmark-inc/whisperd/counter"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/ledger"
	"github.com/bitmark-inc/whisperd/ledger/mocks"
	"github.com/bitmark-inc/whisperd/record"
	"github.com/bitmark-inc/whisperd/rpc/confession"
	"github.com/bitmark-inc/whisperd/rpc/fixtures"
	"github.com/bitmark-inc/whisperd/rpc/handler"
	"github.com/bitmark-inc/whisperd/rpc/node"
	"github.com/bitmark-inc/whisperd/rpc/server"
	"github.com/bitmark-inc/whisperd/storage"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jReq struct {
	ID     int                       `json:"id"`
	Method string                    `json:"method"`
	Params []confession.GetArguments `json:"params"`
}

type jResp struct {
	ID     int              `json:"id"`
	Result confession.Reply `json:"result"`
	Error  interface{}      `json:"error"`
}

func newHandler(t *testing.T, ctl *gomock.Controller, pools ledger.Pools, maximumConnections uint64) (handler.Handler, *mocks.MockHandle) {
	h := mocks.NewMockHandle(ctl)
	h.EXPECT().Deriver().Return(address.NewDefault()).AnyTimes()

	c := counter.Counter(0)
	services := server.NewServices(logger.New(fixtures.LogCategory), "1.0", chain.Testing, h, pools, &c)
	return handler.New(logger.New(fixtures.LogCategory), services, maximumConnections), h
}

func serve(hdlr handler.Handler, req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	handler.Router(hdlr, nil).ServeHTTP(w, req)
	return w.Result()
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, _ := newHandler(t, ctl, ledger.Pools{}, 5)

	resp := serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/not/found", nil))

	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "wrong http code")
	assert.Equal(t, "not found", j.Error, "wrong response")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, h := newHandler(t, ctl, ledger.Pools{}, 5)

	target := address.Address{4, 5, 6}
	stored := &record.Confession{ContentURI: "ipfs://abc", LikeCount: 2}
	h.EXPECT().Confession(target).Return(stored, nil).Times(1)

	arg := jReq{
		ID:     5,
		Method: "Confession.Get",
		Params: []confession.GetArguments{{Address: target}},
	}
	data, _ := json.Marshal(arg)

	resp := serve(hdlr, httptest.NewRequest(http.MethodPost, "http://whisperd/whisperd/rpc", bytes.NewReader(data)))

	var j jResp
	err := json.NewDecoder(resp.Body).Decode(&j)
	assert.Nil(t, err, "decode")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Nil(t, j.Error, "wrong error")
	assert.Equal(t, target, j.Result.Address, "wrong address")
	assert.Equal(t, stored, j.Result.Confession, "wrong confession")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, _ := newHandler(t, ctl, ledger.Pools{}, 5)

	resp := serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/rpc", nil))

	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, "wrong status code")
	assert.Equal(t, "method not allowed", j.Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, _ := newHandler(t, ctl, ledger.Pools{}, 0)

	resp := serve(hdlr, httptest.NewRequest(http.MethodPost, "http://whisperd/whisperd/rpc", nil))

	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "wrong status code")
	assert.Equal(t, "Too Many Requests", j.Error, "wrong error")
}

func TestConfession(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, h := newHandler(t, ctl, ledger.Pools{}, 5)

	found := address.Address{1}
	missing := address.Address{2}
	stored := &record.Confession{ContentURI: "ipfs://abc"}

	h.EXPECT().Confession(found).Return(stored, nil).Times(1)
	h.EXPECT().Confession(missing).Return(nil, fault.AddressNotFound).Times(1)

	resp := serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/confession/"+found.String(), nil))
	var reply confession.Reply
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, stored, reply.Confession, "wrong confession")

	resp = serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/confession/"+missing.String(), nil))
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "wrong status code")
	assert.Equal(t, fault.AddressNotFound.Error(), j.Error, "wrong error")

	resp = serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/confession/0OIl", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "wrong status code")
}

func TestComment(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, h := newHandler(t, ctl, ledger.Pools{}, 5)

	parent := address.Address{1}
	target := address.Address{2}
	stored := &record.Comment{Confession: parent, ContentURI: "hi"}

	h.EXPECT().Comment(target).Return(stored, nil).Times(1)
	h.EXPECT().Confession(parent).Return(&record.Confession{CommentCount: 1}, nil).Times(1)

	resp := serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/comment/"+target.String(), nil))

	var reply struct {
		Comment    *record.Comment    `json:"comment"`
		Confession *record.Confession `json:"confession"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, stored, reply.Comment, "wrong comment")
	assert.Equal(t, uint64(1), reply.Confession.CommentCount, "wrong parent")
}

func TestDerive(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	hdlr, _ := newHandler(t, ctl, ledger.Pools{}, 5)

	author, _ := account.NewPrivateKey(true)
	commenter, _ := account.NewPrivateKey(true)

	deriver := address.NewDefault()
	expected, _, _ := deriver.Confession(author.Account().Key())
	expectedComment, _, _ := deriver.Comment(expected, commenter.Account().Key())

	url := "http://whisperd/whisperd/derive/" + author.Account().String() + "?commenter=" + commenter.Account().String()
	resp := serve(hdlr, httptest.NewRequest(http.MethodGet, url, nil))

	var reply confession.DeriveReply
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, expected, reply.Confession, "wrong confession")
	if assert.NotNil(t, reply.Comment, "missing comment") {
		assert.Equal(t, expectedComment, *reply.Comment, "wrong comment")
	}

	resp = serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/derive/0OIl", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "wrong status code")

	live, _ := account.NewPrivateKey(false)
	resp = serve(hdlr, httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/derive/"+live.Account().String(), nil))
	var e eResp
	_ = json.NewDecoder(resp.Body).Decode(&e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "live author on testing chain")
	assert.Equal(t, fault.WrongNetworkForPublicKey.Error(), e.Error, "wrong error")

	url = "http://whisperd/whisperd/derive/" + author.Account().String() + "?commenter=" + live.Account().String()
	resp = serve(hdlr, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "live commenter on testing chain")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := storage.Initialise(filepath.Join(fixtures.Directory(), "handler"), storage.ReadWrite)
	if !assert.Nil(t, err, "storage initialise") {
		return
	}
	defer storage.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	pools := ledger.Pools{
		Confessions: storage.Pool.Confessions,
		Comments:    storage.Pool.Comments,
	}
	hdlr, _ := newHandler(t, ctl, pools, 5)

	req := httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/details", nil)
	resp := serve(hdlr, req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "not in allow list")

	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.0/24")
	allow["details"] = []*net.IPNet{ipNet}
	hdlr.SetAllow(allow)

	req = httptest.NewRequest(http.MethodGet, "http://whisperd/whisperd/details", nil)
	resp = serve(hdlr, req)

	var reply node.InfoReply
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}
