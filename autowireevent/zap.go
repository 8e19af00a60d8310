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

package autowireevent

import (
	"go.uber.org/autowire/internal/introspect"
	"go.uber.org/zap"
)

// ZapLogger is an autowire event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *ComponentSet:
		l.Logger.Debug("component set", zap.String("id", e.ID))
	case *FactorySet:
		l.Logger.Debug("factory set", zap.String("id", e.ID))
	case *Cleared:
		l.Logger.Debug("cleared")
	case *FactoryInvoked:
		if e.Err != nil {
			l.Logger.Error("factory failed",
				zap.String("id", e.ID),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("factory invoked",
				zap.String("id", e.ID),
				zap.Duration("runtime", e.Runtime),
			)
		}
	case *Constructed:
		fields := []zap.Field{zap.String("type", e.TypeName)}
		if e.Constructor != nil {
			fields = append(fields, zap.String("constructor", introspect.FuncName(e.Constructor)))
		}
		if e.Err != nil {
			l.Logger.Error("construction failed", append(fields, zap.Error(e.Err))...)
		} else {
			l.Logger.Info("constructed", append(fields, zap.Duration("runtime", e.Runtime))...)
		}
	case *Called:
		if e.Err != nil {
			l.Logger.Error("call failed",
				zap.String("owner", e.Owner),
				zap.String("method", e.Method),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("called",
				zap.String("owner", e.Owner),
				zap.String("method", e.Method),
			)
		}
	case *ParamDefaulted:
		l.Logger.Warn("parameter defaulted",
			zap.String("owner", e.Owner),
			zap.String("method", e.Method),
			zap.String("param", e.Param),
			zap.Error(e.Err),
		)
	}
}
