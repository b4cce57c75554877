// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package opts

import (
	"strings"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/method"
	"gitlab.com/tozd/go/errors"
)

// FlagValues holds the raw command line flags of a run
type FlagValues struct {
	Recursive   bool
	Collision   int
	Show        bool
	Ext         string
	Prefix      string
	OutExt      string
	MaxAttempts int
	ConfigFile  string
	Debug       bool
}

// RootOpts contains the resolved options of a run
type RootOpts struct {
	Dir         string
	Spec        method.Spec
	Recursive   bool
	Collision   int
	Show        bool
	Ext         string
	Prefix      string
	OutExt      string
	MaxAttempts int
}

// Resolve merges flags, the optional config file and positional args. A flag
// wins over the config only when changed reports it was given explicitly.
// args holds the directory and, unless cfg supplies methods, the naming spec.
func Resolve(flags FlagValues, changed func(name string) bool, cfg *config.Config, args []string) (*RootOpts, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if len(args) == 0 {
		return nil, errors.Errorf("directory argument is required")
	}

	var (
		spec method.Spec
		err  error
	)
	switch {
	case len(args) > 1:
		spec, err = method.Parse(args[1])
	case cfg.Methods != "":
		spec, err = cfg.Spec()
	default:
		return nil, errors.Errorf("naming methods are required, pass them as the second argument or set methods in the config file")
	}
	if err != nil {
		return nil, errors.Errorf("parsing naming methods: %w", err)
	}

	o := &RootOpts{
		Dir:         args[0],
		Spec:        spec,
		Recursive:   pick(changed("recursive"), flags.Recursive, cfg.Recursive),
		Collision:   pick(changed("collision"), flags.Collision, cfg.Collision),
		Show:        pick(changed("show"), flags.Show, cfg.Show),
		Ext:         strings.TrimLeft(pick(changed("ext"), flags.Ext, cfg.Ext), "."),
		Prefix:      pick(changed("prefix"), flags.Prefix, cfg.Prefix),
		OutExt:      strings.TrimLeft(pick(changed("out-ext"), flags.OutExt, cfg.OutExt), "."),
		MaxAttempts: pick(changed("max-attempts"), flags.MaxAttempts, cfg.MaxAttempts),
	}

	if o.Collision < 0 {
		return nil, errors.Errorf("collision must not be negative: %d", o.Collision)
	}
	if o.MaxAttempts < 0 {
		return nil, errors.Errorf("max-attempts must not be negative: %d", o.MaxAttempts)
	}

	return o, nil
}

func pick[T any](explicit bool, flag, cfg T) T {
	if explicit {
		return flag
	}
	return cfg
}
