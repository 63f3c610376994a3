/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package main

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/capitalone/radix"
)

const (
	defaultFromBase     = 10
	defaultToBase       = 62
	defaultAlphabetName = "base62"
	defaultEndianness   = "big"
)

// config defines the configuration options for radixconv.
type config struct {
	ConfigFile string `short:"c" long:"configfile" description:"Path to an INI configuration file"`

	FromBase     int    `short:"f" long:"from-base" description:"Base of the input"`
	FromAlphabet string `long:"from-alphabet" description:"Input symbols, or the name of a predefined alphabet (base2, base8, base10, base16, base36, base58, base62, crockford32)"`
	FromEndian   string `long:"from-endian" choice:"big" choice:"little" description:"Order of significance of the input"`

	ToBase     int    `short:"t" long:"to-base" description:"Base of the output"`
	ToAlphabet string `long:"to-alphabet" description:"Output symbols, or the name of a predefined alphabet"`
	ToEndian   string `long:"to-endian" choice:"big" choice:"little" description:"Order of significance of the output"`

	Number bool `short:"n" long:"number" description:"Print the numeric value of each input instead of converting it"`

	DebugLog bool   `long:"debuglog" description:"Enable debug logs"`
	JSONLog  bool   `long:"jsonlog" description:"Whether to log in JSON format"`
	LogFile  string `long:"logfile" description:"Also write logs to this file, rotated by size"`
}

func defaultConfig() *config {
	return &config{
		FromBase:     defaultFromBase,
		FromAlphabet: defaultAlphabetName,
		FromEndian:   defaultEndianness,
		ToBase:       defaultToBase,
		ToAlphabet:   defaultAlphabetName,
		ToEndian:     defaultEndianness,
	}
}

// loadConfig parses the command line, then the configuration file if one is
// given, then the command line again so that flags take precedence over the
// file. It returns the remaining positional arguments.
func loadConfig(args []string) (*config, []string, error) {
	cfg := defaultConfig()
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if cfg.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", cfg.ConfigFile, err)
		}
		if rest, err = parser.ParseArgs(args); err != nil {
			return nil, nil, err
		}
	}
	return cfg, rest, nil
}

// numerals resolves and validates the input and output numeral systems.
func (c *config) numerals() (from, to radix.Numeral, err error) {
	if from, err = numeral(c.FromBase, c.FromAlphabet, c.FromEndian); err != nil {
		return from, to, fmt.Errorf("input: %w", err)
	}
	if to, err = numeral(c.ToBase, c.ToAlphabet, c.ToEndian); err != nil {
		return from, to, fmt.Errorf("output: %w", err)
	}
	return from, to, nil
}

func numeral(base int, alphabet, endian string) (radix.Numeral, error) {
	n := radix.Numeral{Base: base, Alphabet: alphabet}
	if named, ok := radix.LookupAlphabet(alphabet); ok {
		// Only the first base symbols of a predefined alphabet are digits,
		// so "base62" in base 10 rejects letters.
		if symbols := []rune(named); base > 0 && len(symbols) > base {
			named = string(symbols[:base])
		}
		n.Alphabet = named
	}
	if n.Alphabet == "" {
		return n, errors.New("empty alphabet")
	}
	e, err := radix.ParseEndianness(endian)
	if err != nil {
		return n, err
	}
	n.Endianness = e
	return n, n.Validate()
}
