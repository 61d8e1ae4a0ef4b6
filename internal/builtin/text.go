// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"

	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

const greetTemplate = "${greeting} ${name}"

var (
	// Expand renders template with every other bound parameter visible as a
	// shell variable. Command substitution is rejected.
	Expand = command.MustDefine("text.expand", computeExpand,
		command.Shape{Required: []types.ParamName{"template"}},
		nil,
		command.WithDescription("Expand $name references in template"),
	)

	// Greet renders "<greeting> <name>" through a curried Expand.
	Greet = command.MustDefine("text.greet", computeGreet,
		command.Shape{
			Required: []types.ParamName{"name"},
			Optional: params.Map{"greeting": "hello"},
		},
		func(d *command.Declarer) error {
			out, err := Expand.Curry().Apply(params.Map{"template": greetTemplate})
			if err != nil {
				return err
			}
			return d.Dep("render", command.Literal(out.Partial()))
		},
		command.WithDescription("Greet name through a curried text.expand"),
	)
)

func computeExpand(in *command.Instance) (any, error) {
	tmpl, err := params.String(in, "template")
	if err != nil {
		return nil, err
	}

	word, err := syntax.NewParser().Document(strings.NewReader(tmpl))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	store := in.Params()
	pairs := make([]string, 0, store.Len())
	for _, name := range store.Names() {
		if name == "template" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%v", name, store.Value(name)))
	}

	out, err := expand.Document(&expand.Config{Env: expand.ListEnviron(pairs...)}, word)
	if err != nil {
		return nil, fmt.Errorf("expand template: %w", err)
	}
	return in.Yield(out)
}

func computeGreet(in *command.Instance) (any, error) {
	p, err := in.Expand([]types.ParamName{"name", "greeting"}, nil)
	if err != nil {
		return nil, err
	}
	v, err := in.Invoke("render", p)
	if err != nil {
		return nil, err
	}
	return in.Yield(v)
}
