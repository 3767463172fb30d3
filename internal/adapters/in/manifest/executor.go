package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
)

// Handler interfaces consumed by the executor.
type (
	CreateShipHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipCommand) error
	}

	LoadContainerHandler interface {
		Handle(ctx context.Context, cmd commands.LoadContainerCommand) error
	}

	UnloadContainerHandler interface {
		Handle(ctx context.Context, cmd commands.UnloadContainerCommand) ([]*cargo.Container, error)
	}

	TransferContainerHandler interface {
		Handle(ctx context.Context, cmd commands.TransferContainerCommand) error
	}

	ReplaceContainerHandler interface {
		Handle(ctx context.Context, cmd commands.ReplaceContainerCommand) (*cargo.Container, error)
	}

	EmptyContainerHandler interface {
		Handle(ctx context.Context, cmd commands.EmptyContainerCommand) error
	}
)

// Handlers groups the command handlers a manifest needs.
type Handlers struct {
	CreateShip        CreateShipHandler
	LoadContainer     LoadContainerHandler
	UnloadContainer   UnloadContainerHandler
	TransferContainer TransferContainerHandler
	ReplaceContainer  ReplaceContainerHandler
	EmptyContainer    EmptyContainerHandler
}

// StepResult records the outcome of one step.
type StepResult struct {
	// Index is 1-based.
	Index  int
	Action Action
	Ship   string
	Ref    string
	Serial string
	Err    error
}

// Report is the outcome of a manifest run.
type Report struct {
	Steps []StepResult
	// Serials maps every container ref that was built to its serial number.
	Serials map[string]kernel.SerialNumber
}

// Failed returns the steps that did not succeed.
func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Executor runs manifests.
type Executor struct {
	factory  *cargo.Factory
	handlers Handlers
	strict   bool
	logger   *slog.Logger
}

// NewExecutor creates an executor building containers with factory. In
// strict mode the first failing step aborts the run.
func NewExecutor(factory *cargo.Factory, handlers Handlers, strict bool, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		factory:  factory,
		handlers: handlers,
		strict:   strict,
		logger:   logger.With("component", "manifest"),
	}
}

// Run registers the manifest ships and executes its steps in order.
//
// Ship registration failures always abort the run. A failing step is logged
// and recorded in the report; unless the executor is strict, later steps
// still run. In strict mode the error of the failing step is returned
// together with the report so far.
func (e *Executor) Run(ctx context.Context, m Manifest) (Report, error) {
	if err := m.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{Serials: make(map[string]kernel.SerialNumber)}

	for _, s := range m.Ships {
		cmd, err := commands.NewCreateShipCommand(s.Name, s.MaxSpeed, s.MaxContainers, s.MaxWeight)
		if err != nil {
			return report, fmt.Errorf("ship %q: %w", s.Name, err)
		}
		if err = e.handlers.CreateShip.Handle(ctx, cmd); err != nil {
			return report, fmt.Errorf("ship %q: %w", s.Name, err)
		}
		e.logger.InfoContext(ctx, "ship registered", "ship", s.Name, "id", cmd.ShipID().String())
	}

	for i, step := range m.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := StepResult{Index: i + 1, Action: step.Action, Ship: step.Ship, Ref: step.Ref}
		serial, err := e.execute(ctx, step, report.Serials)
		if serial.Validate() == nil {
			result.Serial = serial.String()
		}
		result.Err = err
		report.Steps = append(report.Steps, result)

		if err != nil {
			e.logger.WarnContext(ctx, "step failed",
				"step", result.Index, "action", string(step.Action), "ship", step.Ship, "error", err)
			if e.strict {
				return report, fmt.Errorf("step %d (%s): %w", result.Index, step.Action, err)
			}
			continue
		}

		e.logger.DebugContext(ctx, "step done",
			"step", result.Index, "action", string(step.Action), "ship", step.Ship, "serial", result.Serial)
	}

	return report, nil
}

func (e *Executor) execute(
	ctx context.Context,
	step Step,
	refs map[string]kernel.SerialNumber,
) (kernel.SerialNumber, error) {
	switch step.Action {
	case ActionLoad:
		return e.load(ctx, step, refs)
	case ActionUnload:
		return e.unload(ctx, step, refs)
	case ActionTransfer:
		return e.transfer(ctx, step, refs)
	case ActionReplace:
		return e.replace(ctx, step, refs)
	case ActionEmpty:
		return e.empty(ctx, step, refs)
	}
	return kernel.SerialNumber{}, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
}

func (e *Executor) load(ctx context.Context, step Step, refs map[string]kernel.SerialNumber) (kernel.SerialNumber, error) {
	c, err := e.build(step.Container, refs)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	cmd, err := commands.NewLoadContainerCommand(step.Ship, c)
	if err != nil {
		return c.SerialNumber(), err
	}
	return c.SerialNumber(), e.handlers.LoadContainer.Handle(ctx, cmd)
}

func (e *Executor) unload(ctx context.Context, step Step, refs map[string]kernel.SerialNumber) (kernel.SerialNumber, error) {
	serial, err := resolve(step.Ref, refs)
	if err != nil {
		return serial, err
	}

	cmd, err := commands.NewUnloadContainerCommand(step.Ship, serial)
	if err != nil {
		return serial, err
	}

	removed, err := e.handlers.UnloadContainer.Handle(ctx, cmd)
	if err != nil {
		return serial, err
	}
	if len(removed) == 0 {
		e.logger.InfoContext(ctx, "container was not aboard", "ship", step.Ship, "serial", serial.String())
	}
	return serial, nil
}

func (e *Executor) transfer(ctx context.Context, step Step, refs map[string]kernel.SerialNumber) (kernel.SerialNumber, error) {
	serial, err := resolve(step.Ref, refs)
	if err != nil {
		return serial, err
	}

	cmd, err := commands.NewTransferContainerCommand(step.Ship, step.To, serial)
	if err != nil {
		return serial, err
	}
	return serial, e.handlers.TransferContainer.Handle(ctx, cmd)
}

func (e *Executor) replace(ctx context.Context, step Step, refs map[string]kernel.SerialNumber) (kernel.SerialNumber, error) {
	serial, err := resolve(step.Ref, refs)
	if err != nil {
		return serial, err
	}

	replacement, err := e.build(step.Container, refs)
	if err != nil {
		return serial, err
	}

	cmd, err := commands.NewReplaceContainerCommand(step.Ship, serial, replacement)
	if err != nil {
		return replacement.SerialNumber(), err
	}

	if _, err = e.handlers.ReplaceContainer.Handle(ctx, cmd); err != nil {
		return replacement.SerialNumber(), err
	}
	return replacement.SerialNumber(), nil
}

func (e *Executor) empty(ctx context.Context, step Step, refs map[string]kernel.SerialNumber) (kernel.SerialNumber, error) {
	serial, err := resolve(step.Ref, refs)
	if err != nil {
		return serial, err
	}

	cmd, err := commands.NewEmptyContainerCommand(step.Ship, serial)
	if err != nil {
		return serial, err
	}
	return serial, e.handlers.EmptyContainer.Handle(ctx, cmd)
}

// build creates and fills the container described by spec. The ref is
// recorded as soon as the container exists, even when filling it fails.
func (e *Executor) build(spec *Container, refs map[string]kernel.SerialNumber) (*cargo.Container, error) {
	if _, used := refs[spec.Ref]; used {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateRef, spec.Ref)
	}

	kind, err := kernel.ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	dims, err := cargo.NewDimensions(spec.MaxCapacity, spec.Weight, spec.Height, spec.Depth)
	if err != nil {
		return nil, err
	}

	var c *cargo.Container
	switch kind {
	case kernel.Liquid:
		c, err = e.factory.NewLiquid(dims, spec.Product, spec.Hazardous)
	case kernel.Gas:
		c, err = e.factory.NewGas(dims, spec.Product, spec.Pressure)
	case kernel.Reefer:
		c, err = e.factory.NewReefer(dims, spec.Product)
	case kernel.UnknownKind:
		err = kind.Validate()
	}
	if err != nil {
		return nil, err
	}
	refs[spec.Ref] = c.SerialNumber()

	if spec.Load > 0 {
		if err = c.LoadProduct(spec.Product, spec.Load); err != nil {
			return nil, errors.Join(fmt.Errorf("fill %s", c.SerialNumber()), err)
		}
	}
	return c, nil
}

func resolve(ref string, refs map[string]kernel.SerialNumber) (kernel.SerialNumber, error) {
	serial, ok := refs[ref]
	if !ok {
		return kernel.SerialNumber{}, fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}
	return serial, nil
}
