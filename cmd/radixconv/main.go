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

// Command radixconv rewrites numbers from one base and alphabet to another.
//
//	radixconv --from-base 10 --to-base 16 --to-alphabet base16 999
//	3e7
//
// Inputs are taken from the arguments, or one per line from stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/capitalone/radix"
	"github.com/capitalone/radix/internal/logging"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(argv []string) int {
	cfg, args, err := loadConfig(argv)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, e.Message)
			return 0
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level := zap.InfoLevel
	if cfg.DebugLog {
		level = zap.DebugLevel
	}
	logger := logging.New(level, cfg.LogFile, cfg.JSONLog)
	defer func() { _ = logger.Sync() }()

	from, to, err := cfg.numerals()
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 2
	}
	logger.Debug("converting",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Bool("number", cfg.Number),
	)

	var in io.Reader
	if len(args) == 0 {
		in = os.Stdin
	}
	ctx := logging.NewContext(context.Background(), logger)
	if failed := run(ctx, os.Stdout, in, args, from, to, cfg.Number); failed > 0 {
		logger.Debug("conversion finished with failures", zap.Int("failed", failed))
		return 1
	}
	return 0
}

// run converts every argument, or every line of in when it is non-nil,
// writing one result per line to w. Failures are logged and skipped. It
// returns the number of failed inputs.
func run(ctx context.Context, w io.Writer, in io.Reader, args []string, from, to radix.Numeral, number bool) int {
	logger := logging.FromContext(ctx)
	out := bufio.NewWriter(w)
	defer out.Flush()

	failed := 0
	convert := func(text string) {
		result, err := convertOne(text, from, to, number)
		if err != nil {
			logger.Error("conversion failed", zap.String("input", text), zap.Error(err))
			failed++
			return
		}
		_, _ = fmt.Fprintln(out, result)
	}

	if in == nil {
		for _, arg := range args {
			convert(arg)
		}
		return failed
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			convert(line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading input", zap.Error(err))
		failed++
	}
	return failed
}

func convertOne(text string, from, to radix.Numeral, number bool) (string, error) {
	if !number {
		return radix.Convert(text, from, to)
	}
	d, err := from.Decode(text)
	if err != nil {
		return "", err
	}
	if v, err := d.ToUint64(); err == nil {
		return strconv.FormatUint(v, 10), nil
	}
	return d.ToBig().String(), nil
}
