// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/whisperd/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// the global "arg" table is set with arg[0] = fileName and
// arg[1..] = extra arguments so that a file can adjust itself
func ParseConfigurationFile(fileName string, config interface{}, arguments ...string) error {
	if !isStructPointer(config) {
		return fault.InvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	for i, a := range arguments {
		arg.Insert(i+1, lua.LString(a))
	}
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration file: %q did not return a table", fileName)
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}

func isStructPointer(config interface{}) bool {
	v := reflect.ValueOf(config)
	return v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() == reflect.Struct
}
