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

// Package metrics reports container activity to a tally scope.
//
// An Observer is an event logger; combine it with a regular logger through
// autowireevent.Tee:
//
//	obs := metrics.NewObserver(scope.SubScope("autowire"))
//	c := autowire.New(autowire.WithLogger(autowireevent.Tee(logger, obs)))
package metrics

import (
	"github.com/uber-go/tally/v4"
	"go.uber.org/autowire/autowireevent"
)

// Observer counts container events and times factories and constructors.
type Observer struct {
	scope tally.Scope

	componentsSet      tally.Counter
	factoriesSet       tally.Counter
	clears             tally.Counter
	factoryInvocations tally.Counter
	factoryErrors      tally.Counter
	factoryLatency     tally.Timer
	constructions      tally.Counter
	constructionErrors tally.Counter
	constructionTime   tally.Timer
	paramDefaults      tally.Counter
}

var _ autowireevent.Logger = (*Observer)(nil)

// NewObserver returns an Observer reporting to scope. A nil scope reports
// nowhere.
func NewObserver(scope tally.Scope) *Observer {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Observer{
		scope:              scope,
		componentsSet:      scope.Counter("components_set"),
		factoriesSet:       scope.Counter("factories_set"),
		clears:             scope.Counter("clears"),
		factoryInvocations: scope.Counter("factory_invocations"),
		factoryErrors:      scope.Counter("factory_errors"),
		factoryLatency:     scope.Timer("factory_latency"),
		constructions:      scope.Counter("constructions"),
		constructionErrors: scope.Counter("construction_errors"),
		constructionTime:   scope.Timer("construction_latency"),
		paramDefaults:      scope.Counter("param_defaults"),
	}
}

// LogEvent records the event.
func (o *Observer) LogEvent(event autowireevent.Event) {
	switch e := event.(type) {
	case *autowireevent.ComponentSet:
		o.componentsSet.Inc(1)
	case *autowireevent.FactorySet:
		o.factoriesSet.Inc(1)
	case *autowireevent.Cleared:
		o.clears.Inc(1)
	case *autowireevent.FactoryInvoked:
		o.factoryInvocations.Inc(1)
		o.factoryLatency.Record(e.Runtime)
		if e.Err != nil {
			o.factoryErrors.Inc(1)
		}
	case *autowireevent.Constructed:
		o.constructions.Inc(1)
		o.constructionTime.Record(e.Runtime)
		if e.Err != nil {
			o.constructionErrors.Inc(1)
		}
	case *autowireevent.Called:
		scope := o.scope.Tagged(map[string]string{"owner": e.Owner, "method": e.Method})
		scope.Counter("calls").Inc(1)
		if e.Err != nil {
			scope.Counter("call_errors").Inc(1)
		}
	case *autowireevent.ParamDefaulted:
		o.paramDefaults.Inc(1)
	}
}
