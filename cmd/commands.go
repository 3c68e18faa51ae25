package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

func ErrUnknownCmd(cmd string) error {
	return fmt.Errorf("ERR unknown command '%s'", cmd)
}

func ErrInvalidNArg(cmd string) error {
	return fmt.Errorf("ERR invalid number of arguments for command '%s'", cmd)
}

var ErrUnbalancedQuotes = errors.New("ERR unbalanced quotes")
var ErrEmptyCommand = errors.New("ERR empty command")

type CommandType = byte

const (
	// Server commands
	CmdVersion CommandType = iota
	CmdPing
	CmdKeys
	CmdDbSize
	CmdDel
	CmdFlushAll
	// Singly linked logs
	CmdLogAppend
	CmdLogPop
	CmdLogLen
	CmdLogRange
	// Doubly linked logs
	CmdBiLogAppend
	CmdBiLogPop
	CmdBiLogLen
	CmdBiLogRange
	CmdBiLogRevRange
)

type Command struct {
	Kind   CommandType
	Key    string
	Keys   []string
	Values []string
}

// Expected argument counts, the command name included. A negative value is a
// lower bound.
var arity = map[string]struct {
	kind CommandType
	argc int
}{
	"version":   {CmdVersion, 1},
	"ping":      {CmdPing, 1},
	"keys":      {CmdKeys, 1},
	"dbsize":    {CmdDbSize, 1},
	"del":       {CmdDel, -2},
	"flushall":  {CmdFlushAll, 1},
	"tappend":   {CmdLogAppend, -3},
	"tpop":      {CmdLogPop, 2},
	"tlen":      {CmdLogLen, 2},
	"trange":    {CmdLogRange, 2},
	"bappend":   {CmdBiLogAppend, -3},
	"bpop":      {CmdBiLogPop, 2},
	"blen":      {CmdBiLogLen, 2},
	"brange":    {CmdBiLogRange, 2},
	"brevrange": {CmdBiLogRevRange, 2},
}

func ParseCommand(args []string) (*Command, error) {
	argc := len(args)
	if argc == 0 {
		return nil, ErrEmptyCommand
	}

	name := strings.ToLower(args[0])
	def, found := arity[name]
	if !found {
		return nil, ErrUnknownCmd(name)
	}

	if (def.argc > 0 && argc != def.argc) || (def.argc < 0 && argc < -def.argc) {
		return nil, ErrInvalidNArg(name)
	}

	cmd := &Command{Kind: def.kind}
	switch def.kind {
	case CmdDel:
		cmd.Keys = args[1:]
	case CmdLogAppend, CmdBiLogAppend:
		cmd.Key = args[1]
		cmd.Values = args[2:]
	default:
		if argc > 1 {
			cmd.Key = args[1]
		}
	}

	return cmd, nil
}

func isWhitespace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

// Split an inline request into its arguments. Single or double quotes group
// words containing whitespace.
func sanitize(message string) ([]string, error) {
	out := []string{}
	i := 0

	for i < len(message) {
		c := message[i]
		if isWhitespace(c) {
			i++
			continue
		}

		if c == '"' || c == '\'' {
			end := strings.IndexByte(message[i+1:], c)
			if end < 0 {
				return nil, ErrUnbalancedQuotes
			}

			out = append(out, message[i+1:i+1+end])
			i += end + 2
			continue
		}

		start := i
		for i < len(message) && !isWhitespace(message[i]) {
			i++
		}

		out = append(out, message[start:i])
	}

	return out, nil
}
