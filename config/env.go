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
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Prefix starts the name of every environment variable read by Load.
const Prefix = "AUTOWIRE"

// LookupFunc returns the value of an environment variable and whether it is
// set. os.LookupEnv is one.
type LookupFunc func(key string) (string, bool)

// max_depth -> AUTOWIRE__MAX_DEPTH
func toEnvString(key string) string {
	return Prefix + "__" + strings.ToUpper(strings.Replace(key, ".", "__", -1))
}

// Load reads the settings from the environment, falling back to the
// variables defined in the given dotenv files. Files that do not exist are
// skipped; a variable set in the environment wins over one in a file, and an
// earlier file wins over a later one.
func Load(files ...string) (Config, error) {
	vars := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		m, err := godotenv.Read(files[i])
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				continue
			}
			return Config{}, errors.Wrapf(err, "cannot read %s", files[i])
		}
		for k, v := range m {
			vars[k] = v
		}
	}

	return FromEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	})
}

// FromEnv reads the settings through lookup, starting from Default. Unset
// variables keep their default.
func FromEnv(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if v, ok := lookup(toEnvString("max_depth")); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", toEnvString("max_depth"))
		}
		cfg.MaxDepth = n
	}

	if v, ok := lookup(toEnvString("logger")); ok {
		cfg.Logger = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(toEnvString("development")); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", toEnvString("development"))
		}
		cfg.Development = b
	}

	return cfg, cfg.Validate()
}
