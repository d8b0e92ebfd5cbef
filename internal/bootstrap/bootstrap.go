package bootstrap

import (
	"log/slog"

	"github.com/GregMSThompson/village-dashboard/internal/config"
	"github.com/GregMSThompson/village-dashboard/internal/services"
	"github.com/GregMSThompson/village-dashboard/internal/store"
	"github.com/GregMSThompson/village-dashboard/internal/view"
	"github.com/GregMSThompson/village-dashboard/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Charts   *view.ChartEngine
	Tables   *view.TableEngine
	Catalog  *store.CatalogStore
	Sessions *store.SessionStore[*services.Dashboard]
}

// Run wires the process-wide collaborators. A missing chart engine is not
// fatal: it is logged once and dashboards run with charts disabled.
func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Charts, err = InitChartEngine(cfg.ChartEngine)
	if err != nil {
		bs.Log.Warn("charts disabled", "error", err)
	}
	bs.Tables = view.NewTableEngine()
	bs.Catalog = store.NewCatalogStore()
	bs.Sessions = store.NewSessionStore[*services.Dashboard](cfg.SessionTTL)

	return bs, nil
}

// DashboardFactory builds unstarted dashboards over the default layout.
func (bs *Bootstrap) DashboardFactory() services.DashboardFactory {
	return func() (*services.Dashboard, error) {
		var opts []services.DashboardOption
		if bs.Charts != nil {
			opts = append(opts, services.WithCharts(bs.Charts))
		}
		return services.NewDashboard(services.DefaultLayout(), bs.Catalog, bs.Tables, opts...)
	}
}
