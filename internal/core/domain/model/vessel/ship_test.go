package vessel_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/vessel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func newFactory() *cargo.Factory {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cargo.NewFactory(kernel.NewSerialGenerator(), cargo.NewTemperatureCatalog(logger), logger)
}

func createShip(t *testing.T, maxContainers int, maxWeight float64) *vessel.ContainerShip {
	t.Helper()
	ship, err := vessel.NewContainerShip(kernel.NewUUID(), "Aurora", 22, maxContainers, maxWeight)
	require.NoError(t, err)
	return ship
}

func createContainer(t *testing.T, f *cargo.Factory, shellWeight, load float64) *cargo.Container {
	t.Helper()
	dims, err := cargo.NewDimensions(30000, shellWeight, 250, 600)
	require.NoError(t, err)
	c, err := f.NewReefer(dims, "Fish")
	require.NoError(t, err)
	require.NoError(t, c.Load(load))
	return c
}

func TestNewContainerShip(t *testing.T) {
	t.Run("should create empty ship with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		ship, err := vessel.NewContainerShip(id, "Aurora", 22.5, 4, 60)

		require.NoError(t, err)
		require.NoError(t, ship.Validate())
		assert.True(t, ship.ID().IsEqual(id))
		assert.Equal(t, "Aurora", ship.Name())
		assert.InDelta(t, 22.5, ship.MaxSpeed(), 1e-9)
		assert.Equal(t, 4, ship.MaxContainers())
		assert.InDelta(t, 60.0, ship.MaxWeight(), 1e-9)
		assert.Zero(t, ship.ContainerCount())
		assert.Empty(t, ship.Containers())
		assert.Zero(t, ship.TotalMass())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		ship, err := vessel.NewContainerShip(kernel.NewUUID(), "", 10, 1, 1)

		assert.Nil(t, ship)
		require.ErrorIs(t, err, vessel.ErrNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive ceilings and negative speed together", func(t *testing.T) {
		ship, err := vessel.NewContainerShip(kernel.NewUUID(), "Aurora", -1, 0, 0)

		assert.Nil(t, ship)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "maxSpeed is invalid")
		assert.Contains(t, err.Error(), "maxContainers is invalid")
		assert.Contains(t, err.Error(), "maxWeight is invalid")
	})

	t.Run("should reject zero-value id", func(t *testing.T) {
		ship, err := vessel.NewContainerShip(kernel.UUID{}, "Aurora", 10, 1, 1)

		assert.Nil(t, ship)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value ship should fail validation", func(t *testing.T) {
		var ship vessel.ContainerShip

		assert.ErrorIs(t, ship.Validate(), vessel.ErrShipIsNotConstructed)
	})
}

func TestContainerShip_LoadContainer(t *testing.T) {
	t.Run("should reject third container by count before weight", func(t *testing.T) {
		// Given a ship holding at most 2 containers and 50 tonnes
		f := newFactory()
		ship := createShip(t, 2, 50)
		first := createContainer(t, f, 20000, 0)
		second := createContainer(t, f, 20000, 0)
		third := createContainer(t, f, 20000, 0)

		// When
		require.NoError(t, ship.LoadContainer(first))
		require.NoError(t, ship.LoadContainer(second))
		err := ship.LoadContainer(third)

		// Then
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		var capacityErr *errs.CapacityExceededError
		require.ErrorAs(t, err, &capacityErr)
		assert.Equal(t, 3, capacityErr.Requested)
		assert.Equal(t, 2, capacityErr.Max)
		assert.Equal(t, 2, ship.ContainerCount())
		assert.InDelta(t, 40000.0, ship.TotalMass(), 1e-9)
	})

	t.Run("should reject container that would exceed weight ceiling", func(t *testing.T) {
		// Given
		f := newFactory()
		ship := createShip(t, 5, 30)
		require.NoError(t, ship.LoadContainer(createContainer(t, f, 10000, 5000)))
		heavy := createContainer(t, f, 10000, 5001)

		// When
		err := ship.LoadContainer(heavy)

		// Then
		require.ErrorIs(t, err, errs.ErrOverfill)
		var overfill *errs.OverfillError
		require.ErrorAs(t, err, &overfill)
		assert.Equal(t, "Aurora", overfill.Subject)
		assert.Equal(t, errs.UnitTonne, overfill.Unit)
		assert.InDelta(t, 15.001, overfill.Requested, 1e-9)
		assert.InDelta(t, 15.0, overfill.Current, 1e-9)
		assert.InDelta(t, 30.0, overfill.Limit, 1e-9)
		assert.Equal(t, 1, ship.ContainerCount())
	})

	t.Run("should accept container that reaches weight ceiling exactly", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 30)
		require.NoError(t, ship.LoadContainer(createContainer(t, f, 10000, 5000)))

		err := ship.LoadContainer(createContainer(t, f, 10000, 5000))

		require.NoError(t, err)
		assert.InDelta(t, 30000.0, ship.TotalMass(), 1e-9)
	})

	t.Run("should keep admission order", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 3, 100)
		a := createContainer(t, f, 1000, 0)
		b := createContainer(t, f, 1000, 0)
		c := createContainer(t, f, 1000, 0)

		require.NoError(t, ship.LoadContainer(b))
		require.NoError(t, ship.LoadContainer(a))
		require.NoError(t, ship.LoadContainer(c))

		assert.Equal(t, []*cargo.Container{b, a, c}, ship.Containers())
	})

	t.Run("should reject container already aboard", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 3, 100)
		c := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainer(c))

		err := ship.LoadContainer(c)

		require.ErrorIs(t, err, vessel.ErrContainerAlreadyAboard)
		assert.Equal(t, 1, ship.ContainerCount())
	})

	t.Run("should reject unconstructed container", func(t *testing.T) {
		ship := createShip(t, 3, 100)

		err := ship.LoadContainer(&cargo.Container{})

		require.ErrorIs(t, err, cargo.ErrContainerIsNotConstructed)
		assert.Zero(t, ship.ContainerCount())
	})

	t.Run("should see load changes of containers already aboard", func(t *testing.T) {
		// Given a container that gains load after admission
		f := newFactory()
		ship := createShip(t, 3, 10)
		aboard := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainer(aboard))
		require.NoError(t, aboard.Load(8000))

		// When
		err := ship.LoadContainer(createContainer(t, f, 1001, 0))

		// Then
		assert.ErrorIs(t, err, errs.ErrOverfill)
	})

	t.Run("should never break ceilings under concurrent admissions", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 5, 1000)
		containers := make([]*cargo.Container, 20)
		for i := range containers {
			containers[i] = createContainer(t, f, 1000, 0)
		}

		var wg sync.WaitGroup
		var mu sync.Mutex
		var rejected int
		for _, c := range containers {
			wg.Add(1)
			go func(c *cargo.Container) {
				defer wg.Done()
				if err := ship.LoadContainer(c); errors.Is(err, errs.ErrCapacityExceeded) {
					mu.Lock()
					rejected++
					mu.Unlock()
				}
			}(c)
		}
		wg.Wait()

		assert.Equal(t, 5, ship.ContainerCount())
		assert.Equal(t, 15, rejected)
	})
}

func TestContainerShip_LoadContainers(t *testing.T) {
	t.Run("should admit whole batch", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 3, 100)
		a := createContainer(t, f, 1000, 0)
		b := createContainer(t, f, 1000, 0)

		require.NoError(t, ship.LoadContainers(a, b))

		assert.Equal(t, []*cargo.Container{a, b}, ship.Containers())
	})

	t.Run("should admit nothing when batch breaks count ceiling", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 100)
		require.NoError(t, ship.LoadContainer(createContainer(t, f, 1000, 0)))

		err := ship.LoadContainers(createContainer(t, f, 1000, 0), createContainer(t, f, 1000, 0))

		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, 1, ship.ContainerCount())
	})

	t.Run("should admit nothing when batch breaks weight ceiling", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 5, 5)

		err := ship.LoadContainers(createContainer(t, f, 3000, 0), createContainer(t, f, 3000, 0))

		require.ErrorIs(t, err, errs.ErrOverfill)
		assert.Zero(t, ship.ContainerCount())
	})

	t.Run("should reject the same container listed twice", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 5, 100)
		c := createContainer(t, f, 1000, 0)

		err := ship.LoadContainers(c, c)

		require.ErrorIs(t, err, vessel.ErrContainerAlreadyAboard)
		assert.Zero(t, ship.ContainerCount())
	})
}

func TestContainerShip_UnloadContainer(t *testing.T) {
	t.Run("should remove matching container and keep order of the rest", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 3, 100)
		a := createContainer(t, f, 1000, 100)
		b := createContainer(t, f, 1000, 0)
		c := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainers(a, b, c))

		removed := ship.UnloadContainer(a.SerialNumber())

		assert.Equal(t, []*cargo.Container{a}, removed)
		assert.Equal(t, []*cargo.Container{b, c}, ship.Containers())
		assert.InDelta(t, 100.0, a.CurrentLoad(), 1e-9)
	})

	t.Run("should be a no-op for unknown serial", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 3, 100)
		a := createContainer(t, f, 1000, 0)
		outsider := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainer(a))

		removed := ship.UnloadContainer(outsider.SerialNumber())

		assert.Empty(t, removed)
		assert.Equal(t, []*cargo.Container{a}, ship.Containers())
	})

	t.Run("should free a slot for a new container", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 1, 100)
		a := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainer(a))

		ship.UnloadContainer(a.SerialNumber())

		require.NoError(t, ship.LoadContainer(createContainer(t, f, 1000, 0)))
	})

	t.Run("should not affect previously returned snapshots", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 100)
		a := createContainer(t, f, 1000, 0)
		b := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainers(a, b))
		snapshot := ship.Containers()

		ship.UnloadContainer(a.SerialNumber())

		assert.Equal(t, []*cargo.Container{a, b}, snapshot)
	})
}

func TestContainerShip_ReplaceContainer(t *testing.T) {
	t.Run("should swap container in place", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 3, 100)
		a := createContainer(t, f, 1000, 0)
		b := createContainer(t, f, 1000, 0)
		c := createContainer(t, f, 1000, 0)
		replacement := createContainer(t, f, 2000, 0)
		require.NoError(t, ship.LoadContainers(a, b, c))

		old, err := ship.ReplaceContainer(b.SerialNumber(), replacement)

		require.NoError(t, err)
		assert.Same(t, b, old)
		assert.Equal(t, []*cargo.Container{a, replacement, c}, ship.Containers())
	})

	t.Run("should evaluate ceilings without the replaced container", func(t *testing.T) {
		// Given a full ship at its weight ceiling
		f := newFactory()
		ship := createShip(t, 1, 5)
		a := createContainer(t, f, 5000, 0)
		require.NoError(t, ship.LoadContainer(a))

		// When
		_, err := ship.ReplaceContainer(a.SerialNumber(), createContainer(t, f, 5000, 0))

		// Then
		require.NoError(t, err)
		assert.Equal(t, 1, ship.ContainerCount())
	})

	t.Run("should leave ship unchanged when replacement is too heavy", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 5)
		a := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainer(a))

		_, err := ship.ReplaceContainer(a.SerialNumber(), createContainer(t, f, 6000, 0))

		require.ErrorIs(t, err, errs.ErrOverfill)
		assert.Equal(t, []*cargo.Container{a}, ship.Containers())
	})

	t.Run("should return not found for unknown serial", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 100)
		outsider := createContainer(t, f, 1000, 0)

		_, err := ship.ReplaceContainer(outsider.SerialNumber(), createContainer(t, f, 1000, 0))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject replacement already aboard at another position", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 100)
		a := createContainer(t, f, 1000, 0)
		b := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainers(a, b))

		_, err := ship.ReplaceContainer(a.SerialNumber(), b)

		require.ErrorIs(t, err, vessel.ErrContainerAlreadyAboard)
		assert.Equal(t, []*cargo.Container{a, b}, ship.Containers())
	})
}

func TestContainerShip_Container(t *testing.T) {
	f := newFactory()
	ship := createShip(t, 2, 100)
	a := createContainer(t, f, 1000, 0)
	require.NoError(t, ship.LoadContainer(a))

	assert.Same(t, a, ship.Container(a.SerialNumber()))
	assert.Nil(t, ship.Container(createContainer(t, f, 1000, 0).SerialNumber()))
}

func TestContainerShip_Describe(t *testing.T) {
	t.Run("should summarize name speed count and tonnes", func(t *testing.T) {
		f := newFactory()
		ship, err := vessel.NewContainerShip(kernel.NewUUID(), "Aurora", 22, 4, 60)
		require.NoError(t, err)
		require.NoError(t, ship.LoadContainers(
			createContainer(t, f, 20000, 500),
			createContainer(t, f, 20000, 0),
		))

		assert.Equal(t, "Ship: Aurora, Speed: 22kn, Containers: 2/4, Weight: 40.5/60t", ship.Describe())
		assert.Equal(t, ship.Describe(), ship.String())
	})
}

func TestContainerShip_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := vessel.NewContainerShip(id, "Aurora", 1, 1, 1)
	require.NoError(t, err)
	b, err := vessel.NewContainerShip(id, "Renamed", 2, 2, 2)
	require.NoError(t, err)
	c := createShip(t, 1, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func createGas(t *testing.T, f *cargo.Factory, shellWeight, load float64) *cargo.Container {
	t.Helper()
	dims, err := cargo.NewDimensions(1000, shellWeight, 250, 600)
	require.NoError(t, err)
	c, err := f.NewGas(dims, "Helium", 12)
	require.NoError(t, err)
	require.NoError(t, c.Load(load))
	return c
}

func TestContainerShip_EmptyContainer(t *testing.T) {
	t.Run("should unload container down to its residual", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 10)
		gas := createGas(t, f, 1000, 800)
		require.NoError(t, ship.LoadContainer(gas))

		emptied, err := ship.EmptyContainer(gas.SerialNumber())

		require.NoError(t, err)
		assert.Same(t, gas, emptied)
		assert.InDelta(t, 50.0, gas.CurrentLoad(), 1e-9)
		assert.InDelta(t, 1050.0, ship.TotalMass(), 1e-9)
	})

	t.Run("should refuse residual gas that breaks the weight ceiling", func(t *testing.T) {
		// Given two empty gas containers filling the 10t ceiling exactly
		f := newFactory()
		ship := createShip(t, 2, 10)
		first := createGas(t, f, 5000, 0)
		require.NoError(t, ship.LoadContainers(first, createGas(t, f, 5000, 0)))

		// When
		_, err := ship.EmptyContainer(first.SerialNumber())

		// Then
		var overfill *errs.OverfillError
		require.ErrorAs(t, err, &overfill)
		assert.Equal(t, errs.UnitTonne, overfill.Unit)
		assert.InDelta(t, 0.05, overfill.Requested, 1e-9)
		assert.Zero(t, first.CurrentLoad())
		assert.InDelta(t, 10000.0, ship.TotalMass(), 1e-9)
	})

	t.Run("should allow residual gas while it still fits", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 10.05)
		first := createGas(t, f, 5000, 0)
		require.NoError(t, ship.LoadContainers(first, createGas(t, f, 5000, 0)))

		_, err := ship.EmptyContainer(first.SerialNumber())

		require.NoError(t, err)
		assert.Equal(t, "Ship: Aurora, Speed: 22kn, Containers: 2/2, Weight: 10.05/10.05t", ship.Describe())
	})

	t.Run("should return not found for unknown serial", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 10)

		_, err := ship.EmptyContainer(createGas(t, f, 1000, 0).SerialNumber())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestContainerShip_TransferContainer(t *testing.T) {
	t.Run("should move container and its owner mark", func(t *testing.T) {
		f := newFactory()
		from := createShip(t, 2, 10)
		to := createShip(t, 2, 10)
		c := createContainer(t, f, 1000, 200)
		require.NoError(t, from.LoadContainer(c))

		moved, err := from.TransferContainer(to, c.SerialNumber())

		require.NoError(t, err)
		assert.Same(t, c, moved)
		assert.Zero(t, from.ContainerCount())
		assert.Equal(t, []*cargo.Container{c}, to.Containers())
		owner, owned := c.Owner()
		assert.True(t, owned)
		assert.True(t, owner.IsEqual(to.ID()))
	})

	t.Run("should leave both ships unchanged when destination is too heavy", func(t *testing.T) {
		f := newFactory()
		from := createShip(t, 2, 10)
		to := createShip(t, 2, 1)
		c := createContainer(t, f, 1500, 0)
		require.NoError(t, from.LoadContainer(c))

		_, err := from.TransferContainer(to, c.SerialNumber())

		require.ErrorIs(t, err, errs.ErrOverfill)
		assert.Equal(t, []*cargo.Container{c}, from.Containers())
		assert.Zero(t, to.ContainerCount())
		owner, _ := c.Owner()
		assert.True(t, owner.IsEqual(from.ID()))
	})

	t.Run("should reject the same ship", func(t *testing.T) {
		f := newFactory()
		ship := createShip(t, 2, 10)
		c := createContainer(t, f, 1000, 0)
		require.NoError(t, ship.LoadContainer(c))

		_, err := ship.TransferContainer(ship, c.SerialNumber())

		require.ErrorIs(t, err, vessel.ErrSameShip)
	})

	t.Run("should not deadlock on concurrent transfers in opposite directions", func(t *testing.T) {
		f := newFactory()
		a := createShip(t, 40, 1000)
		b := createShip(t, 40, 1000)
		var fromA, fromB []*cargo.Container
		for range 20 {
			ca, cb := createContainer(t, f, 1000, 0), createContainer(t, f, 1000, 0)
			require.NoError(t, a.LoadContainer(ca))
			require.NoError(t, b.LoadContainer(cb))
			fromA = append(fromA, ca)
			fromB = append(fromB, cb)
		}

		var wg sync.WaitGroup
		for i := range fromA {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = a.TransferContainer(b, fromA[i].SerialNumber())
			}()
			go func() {
				defer wg.Done()
				_, _ = b.TransferContainer(a, fromB[i].SerialNumber())
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, a.ContainerCount())
		assert.Equal(t, 20, b.ContainerCount())
	})
}

func TestContainerShip_Ownership(t *testing.T) {
	t.Run("should refuse container carried by another ship", func(t *testing.T) {
		f := newFactory()
		aurora := createShip(t, 2, 10)
		borealis := createShip(t, 2, 10)
		c := createContainer(t, f, 1000, 0)
		require.NoError(t, aurora.LoadContainer(c))

		err := borealis.LoadContainer(c)

		require.ErrorIs(t, err, cargo.ErrContainerIsOwned)
		assert.Zero(t, borealis.ContainerCount())
	})

	t.Run("should admit nothing when one container of a batch is carried elsewhere", func(t *testing.T) {
		f := newFactory()
		aurora := createShip(t, 2, 10)
		borealis := createShip(t, 3, 10)
		taken := createContainer(t, f, 1000, 0)
		free := createContainer(t, f, 1000, 0)
		require.NoError(t, aurora.LoadContainer(taken))

		err := borealis.LoadContainers(free, taken)

		require.ErrorIs(t, err, cargo.ErrContainerIsOwned)
		assert.Zero(t, borealis.ContainerCount())
		_, owned := free.Owner()
		assert.False(t, owned)
	})

	t.Run("should release container on unload", func(t *testing.T) {
		f := newFactory()
		aurora := createShip(t, 2, 10)
		borealis := createShip(t, 2, 10)
		c := createContainer(t, f, 1000, 0)
		require.NoError(t, aurora.LoadContainer(c))

		aurora.UnloadContainer(c.SerialNumber())

		require.NoError(t, borealis.LoadContainer(c))
		owner, _ := c.Owner()
		assert.True(t, owner.IsEqual(borealis.ID()))
	})

	t.Run("should release replaced container and refuse a replacement carried elsewhere", func(t *testing.T) {
		f := newFactory()
		aurora := createShip(t, 2, 10)
		borealis := createShip(t, 2, 10)
		old := createContainer(t, f, 1000, 0)
		elsewhere := createContainer(t, f, 1000, 0)
		require.NoError(t, aurora.LoadContainer(old))
		require.NoError(t, borealis.LoadContainer(elsewhere))

		_, err := aurora.ReplaceContainer(old.SerialNumber(), elsewhere)
		require.ErrorIs(t, err, cargo.ErrContainerIsOwned)

		_, err = aurora.ReplaceContainer(old.SerialNumber(), createContainer(t, f, 1000, 0))
		require.NoError(t, err)
		_, owned := old.Owner()
		assert.False(t, owned)
	})
}
