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
	"fmt"
	"io"

	"go.uber.org/autowire/internal/introspect"
)

// ConsoleLogger is an autowire event logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Autowire] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *ComponentSet:
		l.logf("SET\t\t%s", e.ID)
	case *FactorySet:
		l.logf("FACTORY\t%s", e.ID)
	case *Cleared:
		l.logf("CLEAR")
	case *FactoryInvoked:
		if e.Err != nil {
			l.logf("ERROR\t\tFactory for %s failed in %s: %v", e.ID, e.Runtime, e.Err)
		} else {
			l.logf("INVOKE\t%s factory ran in %s", e.ID, e.Runtime)
		}
	case *Constructed:
		ctor := "zero value"
		if e.Constructor != nil {
			ctor = introspect.FuncName(e.Constructor)
		}
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to build %s <= %s: %v", e.TypeName, ctor, e.Err)
		} else {
			l.logf("BUILD\t%s <= %s in %s", e.TypeName, ctor, e.Runtime)
		}
	case *Called:
		if e.Err != nil {
			l.logf("ERROR\t\t%s#%s failed: %v", e.Owner, e.Method, e.Err)
		} else {
			l.logf("CALL\t\t%s#%s", e.Owner, e.Method)
		}
	case *ParamDefaulted:
		l.logf("DEFAULT\t%s#%s.%s: %v", e.Owner, e.Method, e.Param, e.Err)
	}
}
