// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/message"
)

// ParseVectorsFile - execute a Lua vectors file and map the table it
// returns onto config
//
// globals visible to the script:
//   arg[0]    the vectors file name
//   commands  array of every command a vector may name, sorted,
//             with the bare transaction pseudo command last
func ParseVectorsFile(fileName string, config *Configuration) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := L.NewTable()
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	commands := L.NewTable()
	for _, command := range message.Commands() {
		commands.Append(lua.LString(command))
	}
	commands.Append(lua.LString(message.TransactionCommand))
	L.SetGlobal("commands", commands)

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	})
	return mapper.Map(table, config)
}
