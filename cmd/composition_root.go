package cmd

import (
	"io"
	"log/slog"

	"cargo/internal/adapters/in/manifest"
	"cargo/internal/adapters/out/memory"
	"cargo/internal/adapters/out/memory/shiprepo"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"
	"cargo/internal/jobs"
)

// CompositionRoot owns the process-wide collaborators: the ship store, the
// serial generator and the container factory.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	store      *shiprepo.Store
	uowFactory *memory.UnitOfWorkFactory
	containers *cargo.Factory
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) CompositionRoot {
	store := shiprepo.NewStore()
	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		containers: cargo.NewFactory(
			kernel.NewSerialGenerator(),
			cargo.NewTemperatureCatalog(logger),
			logger,
		),
	}
}

func (c *CompositionRoot) ContainerFactory() *cargo.Factory {
	return c.containers
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	return commands.NewCreateShipCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateLoadContainerCommandHandler() commands.LoadContainerCommandHandler {
	return commands.NewLoadContainerCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateUnloadContainerCommandHandler() commands.UnloadContainerCommandHandler {
	return commands.NewUnloadContainerCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateTransferContainerCommandHandler() commands.TransferContainerCommandHandler {
	return commands.NewTransferContainerCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateReplaceContainerCommandHandler() commands.ReplaceContainerCommandHandler {
	return commands.NewReplaceContainerCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateEmptyContainerCommandHandler() commands.EmptyContainerCommandHandler {
	return commands.NewEmptyContainerCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.shipReader())
}

func (c *CompositionRoot) CreateGetShipQueryHandler() queries.GetShipQueryHandler {
	return queries.NewGetShipQueryHandler(c.shipReader())
}

func (c *CompositionRoot) CreateManifestExecutor() *manifest.Executor {
	createShip := c.CreateCreateShipCommandHandler()
	load := c.CreateLoadContainerCommandHandler()
	unload := c.CreateUnloadContainerCommandHandler()
	transfer := c.CreateTransferContainerCommandHandler()
	replace := c.CreateReplaceContainerCommandHandler()
	empty := c.CreateEmptyContainerCommandHandler()

	return manifest.NewExecutor(c.containers, manifest.Handlers{
		CreateShip:        &createShip,
		LoadContainer:     &load,
		UnloadContainer:   &unload,
		TransferContainer: &transfer,
		ReplaceContainer:  &replace,
		EmptyContainer:    &empty,
	}, c.cfg.Strict, c.logger)
}

func (c *CompositionRoot) CreateJobManager(out io.Writer) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetFleetQueryHandler(), c.cfg.ReportSchedule, out, c.logger)
}

func (c *CompositionRoot) shipUoWFactory() commands.ShipUoWFactory {
	return FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipReader() ports.ShipRepository {
	return shiprepo.NewMemoryShipRepository(c.store, nil)
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}
