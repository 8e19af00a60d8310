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

package autowire

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Error is implemented by every error the container produces itself:
// *NotFoundError, *ConstructionError and *ResolutionError. Callers that do not
// care about the specific kind can test for this interface alone.
type Error interface {
	error

	containerError()
}

var (
	_ Error = (*NotFoundError)(nil)
	_ Error = (*ConstructionError)(nil)
	_ Error = (*ResolutionError)(nil)
)

// NotFoundError is returned when an identifier is neither a component, a
// factory nor a type defined in the catalog.
type NotFoundError struct {
	ID string
}

func (*NotFoundError) containerError() {}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.ID)
}

// ConstructionError is returned when a factory or a constructor failed,
// either by returning an error or by panicking.
type ConstructionError struct {
	ID  string
	Op  string // "factory" or "constructor"
	Err error
}

func (*ConstructionError) containerError() {}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.ID, e.Op, e.Err)
}

// Unwrap returns the original failure.
func (e *ConstructionError) Unwrap() error { return e.Err }

// Cause returns the original failure, for use with errors.Cause.
func (e *ConstructionError) Cause() error { return e.Err }

// ResolutionError is returned when the container cannot work out the
// arguments of a constructor or method: a required parameter has no usable
// value, the value does not fit the parameter's type, the method does not
// exist, or types depend on each other in a cycle.
type ResolutionError struct {
	Owner  string
	Method string
	Param  string // empty if the failure is not specific to one parameter
	Reason string
	Err    error
}

func (*ResolutionError) containerError() {}

func (e *ResolutionError) Error() string {
	var sb strings.Builder
	sb.WriteString("cannot resolve ")
	sb.WriteString(e.Owner)
	sb.WriteString("#")
	sb.WriteString(e.Method)
	if e.Param != "" {
		sb.WriteString(".")
		sb.WriteString(e.Param)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying failure, if any.
func (e *ResolutionError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is, or wraps, a *NotFoundError that is not
// itself the cause of another container error.
func IsNotFound(err error) bool {
	_, ok := kindOf(err).(*NotFoundError)
	return ok
}

// IsConstruction reports whether the outermost container error in err's chain
// is a *ConstructionError.
func IsConstruction(err error) bool {
	_, ok := kindOf(err).(*ConstructionError)
	return ok
}

// IsResolution reports whether the outermost container error in err's chain
// is a *ResolutionError.
func IsResolution(err error) bool {
	_, ok := kindOf(err).(*ResolutionError)
	return ok
}

// kindOf returns the first container error in err's chain. A factory that
// fails because of a missing dependency is a construction failure, not a
// missing identifier.
func kindOf(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
