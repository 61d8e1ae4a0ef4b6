// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	ConfigLoadFailedId Id = iota + 1
	CommandNotFoundId
	MissingParamsId
	InvalidParamsId
	PresetNotFoundId
	CallbackIncompleteId
	DeclarationFailedId
	DependencyFailedId
	ComputeFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the markdown body of an entry.
	MarkdownMsg string

	// HttpLink is a documentation link.
	HttpLink string

	// Issue is one help entry of the catalog.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the entry id.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render renders the entry with the named glamour style ("dark", "light",
// "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		var b strings.Builder
		b.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			b.WriteString("\n- <" + string(link) + ">")
		}
		md += b.String()
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Could not load the configuration

dais reads ~/.config/dais/config.cue (or the file given with --config) and
checks it against its built-in schema.

## Things you can try
- Print the defaults and compare:
~~~
$ dais config dump
~~~
- Check the active file:
~~~
$ dais config path
~~~
- Valid log levels are debug, info, warn and error.`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Unknown command type

Command types are addressed by their dotted name, such as math.product.

## Things you can try
~~~
$ dais list
~~~`,
	}

	missingParamsIssue = &Issue{
		id: MissingParamsId,
		mdMsg: `
# Required parameters are missing

Every required parameter must be passed by the caller. Optional defaults
never satisfy a required name.

## Things you can try
- See what the command expects:
~~~
$ dais describe math.product
~~~
- Pass the missing names as name=value:
~~~
$ dais call math.product one=3
~~~
- Build the call up step by step:
~~~
$ dais curry math.scale --step four=10 --step three=1
~~~`,
	}

	invalidParamsIssue = &Issue{
		id: InvalidParamsId,
		mdMsg: `
# Invalid parameters

Parameters are given as name=value. Names use lowercase letters, digits and
underscores. Values are read as CUE literals (42, 1.5, true, "text", [1, 2]);
anything else is taken as a plain string.

Parameter files must end in .toml or .cue and hold one top-level key per
parameter.`,
	}

	presetNotFoundIssue = &Issue{
		id: PresetNotFoundId,
		mdMsg: `
# Unknown preset

Presets are declared in the configuration file:

~~~cue
presets: [
	{name: "double", command: "math.product", params: {two: 2}},
]
~~~

## Things you can try
~~~
$ dais config show
~~~`,
	}

	callbackIncompleteIssue = &Issue{
		id: CallbackIncompleteId,
		mdMsg: `
# Callback attached to an incomplete call

A callback can only be attached to the application step that supplies the
last required parameter. Either supply every required name first or drop the
callback and apply again.`,
	}

	declarationFailedIssue = &Issue{
		id: DeclarationFailedId,
		mdMsg: `
# Invalid command declaration

A command type declares its parameters exactly once. Dependencies may only
be declared while the declaration block runs, their names must not repeat a
parameter name, and command types must not reference each other in a cycle.`,
	}

	dependencyFailedIssue = &Issue{
		id: DependencyFailedId,
		mdMsg: `
# A dependency could not be resolved

A derived dependency is computed from the call's parameters. Check that the
parameters it reads have the expected types, or override the dependency by
passing a value under its name.`,
	}

	computeFailedIssue = &Issue{
		id: ComputeFailedId,
		mdMsg: `
# The command failed

The command received all of its parameters but could not produce a result.
This is usually a value of the wrong type, such as text where a number is
expected.

## Things you can try
~~~
$ dais describe <type>
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		commandNotFoundIssue.Id():    commandNotFoundIssue,
		missingParamsIssue.Id():      missingParamsIssue,
		invalidParamsIssue.Id():      invalidParamsIssue,
		presetNotFoundIssue.Id():     presetNotFoundIssue,
		callbackIncompleteIssue.Id(): callbackIncompleteIssue,
		declarationFailedIssue.Id():  declarationFailedIssue,
		dependencyFailedIssue.Id():   dependencyFailedIssue,
		computeFailedIssue.Id():      computeFailedIssue,
	}
)

// Values returns every entry ordered by id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, len(ids))
	for i, id := range ids {
		out[i] = issues[id]
	}
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
