// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"io"
	"os"

	"go.uber.org/autowire/autowireevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventLogger builds the event logger c names. Console and zap output goes
// to w, or to standard error if w is nil.
func (c Config) EventLogger(w io.Writer) (autowireevent.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	switch c.Logger {
	case LoggerConsole:
		return &autowireevent.ConsoleLogger{W: w}, nil
	case LoggerZap:
		return &autowireevent.ZapLogger{Logger: c.zapLogger(w)}, nil
	default:
		return autowireevent.NopLogger, nil
	}
}

func (c Config) zapLogger(w io.Writer) *zap.Logger {
	if c.Development {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel), zap.Development())
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.InfoLevel))
}
