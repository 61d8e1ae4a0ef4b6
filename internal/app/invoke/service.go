// SPDX-License-Identifier: MPL-2.0

package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/invowk/dais/internal/config"
	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

var (
	// ErrCommandNotFound is the sentinel error wrapped by CommandNotFoundError.
	ErrCommandNotFound = errors.New("command type not found")
	// ErrPresetNotFound is the sentinel error wrapped by PresetNotFoundError.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrPresetMismatch is returned when a preset targets a different command
	// than the request names.
	ErrPresetMismatch = errors.New("preset targets a different command")
	// ErrNoCommand is returned when a request names neither a command nor a preset.
	ErrNoCommand = errors.New("no command requested")
	// ErrStepsAfterComplete is returned when curry steps remain after the
	// chain has already computed its result.
	ErrStepsAfterComplete = errors.New("curry steps left after the call completed")
)

type (
	// PresetSource looks up presets by name. *config.Config implements it.
	PresetSource interface {
		Preset(name config.PresetName) (config.Preset, bool)
	}

	// Service runs requests against a catalog.
	Service struct {
		Catalog *command.Catalog
		// Presets is optional; requests naming a preset fail without it.
		Presets PresetSource
		// Logger receives one debug entry per step. Nil discards.
		Logger *log.Logger
	}

	// Request names what to run. Command may be empty when Preset is set.
	Request struct {
		Command types.TypeName
		Preset  config.PresetName
		Params  params.Map
	}

	// Result is the outcome of Call.
	Result struct {
		Type  *command.Type
		Value any
	}

	// Step records the partial state after one curry step.
	Step struct {
		// Applied is what this step contributed.
		Applied params.Map
		// Supplied is everything accumulated so far.
		Supplied params.Map
		// Missing lists the required names still absent; empty once complete.
		Missing  []types.ParamName
		Complete bool
	}

	// Trace is the outcome of Curry. Value is set only when Complete.
	Trace struct {
		Type     *command.Type
		Steps    []Step
		Complete bool
		Value    any
		// Partial is the final partial application while incomplete.
		Partial *command.Partial
	}

	// CommandNotFoundError is returned when the catalog has no such type.
	CommandNotFoundError struct {
		Name      types.TypeName
		Available []types.TypeName
	}

	// PresetNotFoundError is returned when no preset has the requested name.
	PresetNotFoundError struct {
		Name config.PresetName
	}

	// PresetMismatchError is returned when Request.Command and the preset disagree.
	PresetMismatchError struct {
		Preset    config.PresetName
		Requested types.TypeName
		Target    types.TypeName
	}

	target struct {
		typ    *command.Type
		preset params.Map
	}
)

// Error implements the error interface.
func (e *CommandNotFoundError) Error() string {
	names := make([]string, len(e.Available))
	for i, n := range e.Available {
		names[i] = string(n)
	}
	return fmt.Sprintf("command type %q not found (available: %s)", e.Name, strings.Join(names, ", "))
}

// Unwrap returns ErrCommandNotFound for errors.Is() compatibility.
func (e *CommandNotFoundError) Unwrap() error { return ErrCommandNotFound }

// Error implements the error interface.
func (e *PresetNotFoundError) Error() string {
	return fmt.Sprintf("preset %q not found", e.Name)
}

// Unwrap returns ErrPresetNotFound for errors.Is() compatibility.
func (e *PresetNotFoundError) Unwrap() error { return ErrPresetNotFound }

// Error implements the error interface.
func (e *PresetMismatchError) Error() string {
	return fmt.Sprintf("preset %q targets %q, not %q", e.Preset, e.Target, e.Requested)
}

// Unwrap returns ErrPresetMismatch for errors.Is() compatibility.
func (e *PresetMismatchError) Unwrap() error { return ErrPresetMismatch }

// Call runs req as one complete call. Preset parameters are applied first
// and request parameters win over them; by curry associativity this is the
// same as applying the preset through Curry().Apply and then the request.
// Missing required parameters fail with *command.MissingParamsError.
func (s *Service) Call(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	tgt, err := s.resolve(req)
	if err != nil {
		return Result{}, err
	}

	merged := tgt.preset.Merge(req.Params)
	s.logger().Debug("call", "command", tgt.typ.Name(), "preset", req.Preset, "params", formatNames(merged))

	v, err := tgt.typ.Call(merged)
	if err != nil {
		return Result{Type: tgt.typ}, err
	}
	return Result{Type: tgt.typ, Value: v}, nil
}

// Curry applies the preset, then req.Params, then every step in order, each
// through Partial.Apply. Empty leading maps are skipped. The chain stops at
// the first step that completes; remaining steps fail with
// ErrStepsAfterComplete. An incomplete chain is not an error: the returned
// Trace carries the final Partial.
func (s *Service) Curry(ctx context.Context, req Request, steps []params.Map) (Trace, error) {
	tgt, err := s.resolve(req)
	if err != nil {
		return Trace{}, err
	}

	var chain []params.Map
	if len(tgt.preset) > 0 {
		chain = append(chain, tgt.preset)
	}
	if len(req.Params) > 0 {
		chain = append(chain, req.Params)
	}
	chain = append(chain, steps...)

	trace := Trace{Type: tgt.typ, Partial: tgt.typ.Curry()}
	if len(chain) == 0 {
		chain = append(chain, params.Map{})
	}

	for i, applied := range chain {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		if trace.Complete {
			return trace, fmt.Errorf("%w: %d of %d steps unused", ErrStepsAfterComplete, len(chain)-i, len(chain))
		}

		supplied := trace.Partial.Supplied().Merge(applied)
		out, err := trace.Partial.Apply(applied)
		if err != nil {
			return trace, err
		}

		step := Step{Applied: applied.Clone(), Supplied: supplied, Complete: out.Complete()}
		if out.Complete() {
			trace.Complete = true
			trace.Value = out.Value()
			trace.Partial = nil
		} else {
			trace.Partial = out.Partial()
			step.Missing = trace.Partial.Missing()
		}
		trace.Steps = append(trace.Steps, step)

		s.logger().Debug("curry step",
			"command", tgt.typ.Name(),
			"step", i+1,
			"applied", formatNames(applied),
			"missing", len(step.Missing),
			"complete", step.Complete,
		)
	}
	return trace, nil
}

func (s *Service) resolve(req Request) (target, error) {
	name := req.Command
	var preset params.Map

	if req.Preset != "" {
		if s.Presets == nil {
			return target{}, &PresetNotFoundError{Name: req.Preset}
		}
		p, ok := s.Presets.Preset(req.Preset)
		if !ok {
			return target{}, &PresetNotFoundError{Name: req.Preset}
		}
		if name != "" && name != p.Command {
			return target{}, &PresetMismatchError{Preset: req.Preset, Requested: name, Target: p.Command}
		}
		name = p.Command
		preset = p.ParamMap()
	}

	if name == "" {
		return target{}, ErrNoCommand
	}
	if s.Catalog == nil {
		return target{}, &CommandNotFoundError{Name: name}
	}
	typ, ok := s.Catalog.Resolve(name)
	if !ok {
		available := make([]types.TypeName, 0, s.Catalog.Len())
		for _, t := range s.Catalog.List() {
			available = append(available, t.Name())
		}
		return target{}, &CommandNotFoundError{Name: name, Available: available}
	}
	return target{typ: typ, preset: preset}, nil
}

func (s *Service) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

func formatNames(m params.Map) string {
	names := m.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return strings.Join(out, ",")
}
