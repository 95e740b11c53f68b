package app

import (
	"fmt"

	"github.com/ampliy/ampliy/internal/config"
	"github.com/ampliy/ampliy/internal/event_bus"
	"github.com/ampliy/ampliy/internal/kv"
	"github.com/ampliy/ampliy/internal/utils"
	"github.com/ampliy/ampliy/pkg/catalog"
	"github.com/ampliy/ampliy/pkg/plans"
	"github.com/ampliy/ampliy/pkg/schedule"
	"github.com/ampliy/ampliy/pkg/workshops"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus
	KV       kv.Store

	ScheduleStore   *schedule.Store
	ScheduleJanitor *schedule.Janitor
	ScheduleHandler *schedule.Handler

	CatalogSource  catalog.Source
	CatalogLoader  *catalog.Loader
	CatalogHandler *catalog.Handler

	PlansHandler *plans.Handler

	WorkshopsService *workshops.Service
	WorkshopsHandler *workshops.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
// db may be nil when the catalog is not read from the database.
func BuildDependencies(cfg config.Application, settings schedule.Settings, db *pgxpool.Pool, store kv.Store, opts ...schedule.StoreOption) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()
	deps.KV = store
	subscribeAuditLog(deps.EventBus)

	deps.ScheduleStore = schedule.NewStore(settings, deps.EventBus, deps.Clock, opts...)
	deps.ScheduleJanitor = schedule.NewJanitor(deps.ScheduleStore, cfg.Schedule.JanitorCron)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleStore, deps.Clock)

	source, err := catalogSource(cfg, db)
	if err != nil {
		return nil, err
	}
	deps.CatalogSource = source
	deps.CatalogLoader = catalog.NewLoader(cfg.Api.Enabled, deps.CatalogSource)
	deps.CatalogHandler = catalog.NewHandler(deps.CatalogLoader)

	deps.PlansHandler = plans.NewHandler()

	deps.WorkshopsService = workshops.NewService(deps.KV)
	deps.WorkshopsHandler = workshops.NewHandler(deps.WorkshopsService)

	return deps, nil
}

func catalogSource(cfg config.Application, db *pgxpool.Pool) (catalog.Source, error) {
	if !cfg.Api.Enabled {
		return nil, nil
	}
	switch cfg.Catalog.Source {
	case "database":
		if db == nil {
			return nil, fmt.Errorf("catalog source %q requires a database connection", cfg.Catalog.Source)
		}
		return catalog.NewRepository(db), nil
	case "remote":
		if cfg.Catalog.Upstream == "" {
			return nil, fmt.Errorf("catalog source %q requires catalog.upstream", cfg.Catalog.Source)
		}
		return catalog.NewRemoteSource(cfg.Catalog.Upstream, cfg.Catalog.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func subscribeAuditLog(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.ScheduleEventCreated, func(e event_bus.EventT[event_bus.ScheduledClass]) error {
		log.Infof("session %s scheduled %q (%s) at %s",
			e.Data.SessionId, e.Data.Title, e.Data.EventId, e.Data.StartTime.Format("02/01/2006 15:04"))
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.ScheduleEventDeleted, func(e event_bus.EventT[event_bus.ScheduledClass]) error {
		log.Infof("session %s removed %q (%s)", e.Data.SessionId, e.Data.Title, e.Data.EventId)
		return nil
	})
}
