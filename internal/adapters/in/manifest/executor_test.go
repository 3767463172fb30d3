package manifest_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cargo/internal/adapters/in/manifest"
	"cargo/internal/adapters/out/memory"
	"cargo/internal/adapters/out/memory/shiprepo"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.ShipUoW {
	return f.factory.Create()
}

type fleet struct {
	repo     ports.ShipRepository
	executor func(strict bool, logger *slog.Logger) *manifest.Executor
}

func newFleet() fleet {
	store := shiprepo.NewStore()
	uows := uowFactory{factory: memory.NewUnitOfWorkFactory(store)}
	createShip := commands.NewCreateShipCommandHandler(uows)
	load := commands.NewLoadContainerCommandHandler(uows)
	unload := commands.NewUnloadContainerCommandHandler(uows)
	transfer := commands.NewTransferContainerCommandHandler(uows)
	replace := commands.NewReplaceContainerCommandHandler(uows)
	empty := commands.NewEmptyContainerCommandHandler(uows)
	handlers := manifest.Handlers{
		CreateShip:        &createShip,
		LoadContainer:     &load,
		UnloadContainer:   &unload,
		TransferContainer: &transfer,
		ReplaceContainer:  &replace,
		EmptyContainer:    &empty,
	}

	return fleet{
		repo: shiprepo.NewMemoryShipRepository(store, nil),
		executor: func(strict bool, logger *slog.Logger) *manifest.Executor {
			factory := cargo.NewFactory(kernel.NewSerialGenerator(), cargo.NewTemperatureCatalog(logger), logger)
			return manifest.NewExecutor(factory, handlers, strict, logger)
		},
	}
}

func decodeVoyage(t *testing.T) manifest.Manifest {
	t.Helper()
	m, err := manifest.Decode(strings.NewReader(voyage))
	require.NoError(t, err)
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExecutor_Run(t *testing.T) {
	t.Run("should run every step and record failures", func(t *testing.T) {
		// Given
		ctx := t.Context()
		f := newFleet()
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		// When
		report, err := f.executor(false, logger).Run(ctx, decodeVoyage(t))

		// Then
		require.NoError(t, err)
		require.Len(t, report.Steps, 8)

		failed := report.Failed()
		require.Len(t, failed, 2)
		assert.Equal(t, 3, failed[0].Index)
		assert.ErrorIs(t, failed[0].Err, errs.ErrCapacityExceeded)
		assert.Equal(t, 8, failed[1].Index)
		assert.ErrorIs(t, failed[1].Err, manifest.ErrUnknownRef)

		assert.Equal(t, "KON-L-1", report.Serials["c1"].String())
		assert.Equal(t, "KON-G-2", report.Serials["c2"].String())
		assert.Equal(t, "KON-R-3", report.Serials["c3"].String())
		assert.Equal(t, "KON-R-4", report.Serials["c4"].String())
		assert.Equal(t, "KON-R-4", report.Steps[5].Serial)

		aurora, err := f.repo.GetByName(ctx, "Aurora")
		require.NoError(t, err)
		assert.Zero(t, aurora.ContainerCount())

		borealis, err := f.repo.GetByName(ctx, "Borealis")
		require.NoError(t, err)
		containers := borealis.Containers()
		require.Len(t, containers, 1)
		assert.Equal(t, "KON-G-2", containers[0].SerialNumber().String())
		assert.InDelta(t, 50.0, containers[0].CurrentLoad(), 1e-9)

		assert.Contains(t, logs.String(), "component=manifest")
		assert.Contains(t, logs.String(), "step failed")
	})

	t.Run("should stop at first failure in strict mode", func(t *testing.T) {
		ctx := t.Context()
		f := newFleet()

		report, err := f.executor(true, discardLogger()).Run(ctx, decodeVoyage(t))

		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.ErrorContains(t, err, "step 3 (load)")
		assert.Len(t, report.Steps, 3)

		aurora, err := f.repo.GetByName(ctx, "Aurora")
		require.NoError(t, err)
		assert.Equal(t, 2, aurora.ContainerCount())
	})

	t.Run("should report overfilled container without loading it", func(t *testing.T) {
		ctx := t.Context()
		f := newFleet()
		m := manifest.Manifest{
			Ships: []manifest.Ship{{Name: "Aurora", MaxSpeed: 10, MaxContainers: 2, MaxWeight: 30}},
			Steps: []manifest.Step{{
				Action: manifest.ActionLoad,
				Ship:   "Aurora",
				Container: &manifest.Container{
					Ref: "c1", Kind: "liquid", Product: "Acid", Hazardous: true,
					MaxCapacity: 1000, Weight: 500, Height: 200, Depth: 300, Load: 600,
				},
			}},
		}

		report, err := f.executor(false, discardLogger()).Run(ctx, m)

		require.NoError(t, err)
		require.Len(t, report.Failed(), 1)
		assert.ErrorIs(t, report.Steps[0].Err, errs.ErrOverfill)
		aurora, err := f.repo.GetByName(ctx, "Aurora")
		require.NoError(t, err)
		assert.Zero(t, aurora.ContainerCount())
	})

	t.Run("should abort when a ship cannot be registered", func(t *testing.T) {
		ctx := t.Context()
		f := newFleet()
		m := manifest.Manifest{Ships: []manifest.Ship{{Name: "Aurora", MaxSpeed: 10, MaxContainers: 0, MaxWeight: 30}}}

		_, err := f.executor(false, discardLogger()).Run(ctx, m)

		require.ErrorIs(t, err, commands.ErrMaxContainersIsInvalid)
		assert.ErrorContains(t, err, `ship "Aurora"`)
	})

	t.Run("should reject a reused container ref", func(t *testing.T) {
		ctx := t.Context()
		f := newFleet()
		spec := &manifest.Container{
			Ref: "c1", Kind: "reefer", Product: "Fish",
			MaxCapacity: 1000, Weight: 500, Height: 200, Depth: 300,
		}
		m := manifest.Manifest{
			Ships: []manifest.Ship{{Name: "Aurora", MaxSpeed: 10, MaxContainers: 5, MaxWeight: 30}},
			Steps: []manifest.Step{
				{Action: manifest.ActionLoad, Ship: "Aurora", Container: spec},
				{Action: manifest.ActionLoad, Ship: "Aurora", Container: spec},
			},
		}

		report, err := f.executor(false, discardLogger()).Run(ctx, m)

		require.NoError(t, err)
		require.Len(t, report.Failed(), 1)
		assert.ErrorIs(t, report.Steps[1].Err, manifest.ErrDuplicateRef)
	})

	t.Run("should stop when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		f := newFleet()
		m := decodeVoyage(t)
		cancel()

		_, err := f.executor(false, discardLogger()).Run(ctx, m)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
