// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/rpc.crt", util.EnsureAbsolute("/data", "rpc.crt"))
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./log/"))
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/data", "/etc/../etc/rpc.crt"))
}

func TestEnsureDirectories(t *testing.T) {
	dir, err := ioutil.TempDir("", "whisperd-util-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	a := filepath.Join(dir, "a", "b")
	c := filepath.Join(dir, "c")

	assert.False(t, util.EnsureFileExists(a))
	assert.Nil(t, util.EnsureDirectories(a, c), "create")
	assert.Nil(t, util.EnsureDirectories(a, c), "already present")
	assert.True(t, util.EnsureFileExists(a))
	assert.DirExists(t, c)

	f := filepath.Join(dir, "file")
	assert.Nil(t, ioutil.WriteFile(f, []byte("x"), 0600))
	assert.NotNil(t, util.EnsureDirectories(filepath.Join(f, "sub")), "below a file")
}
