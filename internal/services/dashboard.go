package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/view"
	"github.com/GregMSThompson/village-dashboard/pkg/logger"
)

const trendSuffix = " dari tahun lalu"

// dashboardCatalog is the read-only data source behind the dashboard.
type dashboardCatalog interface {
	Metrics(ctx context.Context, year models.YearKey) (models.MetricSnapshot, error)
	Dataset(ctx context.Context, page models.PageID, year models.YearKey) (models.ChartDataset, error)
	Table(ctx context.Context, id string) (models.StaticTable, error)
	Block(ctx context.Context, id string) (models.Block, error)
}

type chartRenderer interface {
	Clear(c *view.ChartContainer)
	Render(c *view.ChartContainer, cfg models.ChartConfig)
}

type pageInitializer func(ctx context.Context, year models.YearKey) error

type DashboardOption func(d *Dashboard)

// WithCharts enables chart rendering. Without it the dashboard runs with
// charts disabled: navigation, metrics and tables keep working.
func WithCharts(r chartRenderer) DashboardOption {
	return func(d *Dashboard) { d.charts = r }
}

// Dashboard is the state of one dashboard view: which page is active, which
// year is selected and what every widget shows. Methods are serialized, so
// one event is fully handled before the next starts.
type Dashboard struct {
	mu sync.Mutex

	doc          *view.Document
	catalog      dashboardCatalog
	charts       chartRenderer
	tables       tableWidget
	initializers map[models.PageID]pageInitializer
	activeYear   models.YearKey
}

func NewDashboard(layout view.Layout, catalog dashboardCatalog, tables tableRenderer, opts ...DashboardOption) (*Dashboard, error) {
	return newDashboard(pageSpecs, layout, catalog, tables, opts...)
}

func newDashboard(specs []pageSpec, layout view.Layout, catalog dashboardCatalog, tables tableRenderer, opts ...DashboardOption) (*Dashboard, error) {
	d := &Dashboard{
		doc:          view.NewDocument(layout),
		catalog:      catalog,
		tables:       tableWidget{engine: tables},
		initializers: make(map[models.PageID]pageInitializer, len(specs)),
		activeYear:   models.LatestYear(),
	}
	for _, o := range opts {
		o(d)
	}
	for _, spec := range specs {
		d.initializers[spec.page] = d.initializerFor(spec)
	}
	for _, p := range models.Pages {
		if _, ok := d.initializers[p]; !ok {
			return nil, fmt.Errorf("no initializer registered for page %q", p)
		}
	}
	return d, nil
}

func (d *Dashboard) ChartsEnabled() bool {
	return d.charts != nil
}

// Start brings a fresh dashboard to its initial state: dashboard page
// active, every selector on the latest year, population table filled and
// the latest year propagated once.
func (d *Dashboard) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	log := logger.FromContext(ctx)

	if d.charts == nil {
		log.Warn("chart engine not available, charts disabled")
	}
	if err := d.switchToPage(ctx, models.PageDashboard); err != nil {
		return err
	}

	year := models.LatestYear()
	for _, sel := range d.doc.Selectors() {
		sel.Value = year
	}

	if c, ok := d.doc.Table(PopulationTableID).Get(); ok {
		rows := models.PopulationRows(GenerateSamplePopulationData(PopulationTableSize, year))
		if err := d.tables.Ensure(c, PopulationTableSpec, rows); err != nil {
			return err
		}
	}
	return d.updateUIForYear(ctx, year)
}

// SwitchToPage makes page the only active page and menu entry and runs its
// initializer with the currently selected year. Missing elements are
// skipped.
func (d *Dashboard) SwitchToPage(ctx context.Context, page models.PageID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.switchToPage(ctx, page)
}

func (d *Dashboard) switchToPage(ctx context.Context, page models.PageID) error {
	log := logger.FromContext(ctx)

	d.doc.DeactivateAll()
	d.doc.MenuEntry(page).IfPresent(func(m *view.MenuEntry) { m.Active = true })

	section, ok := d.doc.Page(page).Get()
	if !ok {
		log.Debug("page section missing", "page", page)
		return nil
	}
	section.Active = true

	initPage, ok := d.initializers[page]
	if !ok {
		return errs.NewNotFoundError(fmt.Sprintf("no initializer for page %s", page))
	}
	return initPage(ctx, d.selectedYear(page))
}

// selectedYear reads the page's own selector, then the first selector in the
// document, then falls back to the latest year.
func (d *Dashboard) selectedYear(page models.PageID) models.YearKey {
	if sel, ok := d.doc.PageSelector(page).Get(); ok {
		return sel.Value
	}
	if sel, ok := d.doc.FirstSelector().Get(); ok {
		return sel.Value
	}
	return models.LatestYear()
}

// UpdateUIForYear propagates a year change: metric panels, the population
// table and, when the dashboard page is active, its charts. An unsupported
// year is rejected before anything changes.
func (d *Dashboard) UpdateUIForYear(ctx context.Context, year models.YearKey) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateUIForYear(ctx, year)
}

func (d *Dashboard) updateUIForYear(ctx context.Context, year models.YearKey) error {
	log := logger.FromContext(ctx)

	if !year.Supported() {
		return errs.NewUnsupportedYearError(string(year))
	}
	snap, err := d.catalog.Metrics(ctx, year)
	if err != nil {
		return err
	}
	dashboardActive := d.doc.ActivePage().OrElse("") == models.PageDashboard
	if dashboardActive {
		if _, err := d.catalog.Dataset(ctx, models.PageDashboard, year); err != nil {
			return err
		}
	}

	for _, ind := range models.Indicators {
		el, ok := d.doc.Metric(ind).Get()
		if !ok {
			log.Debug("metric panel missing", "indicator", ind)
			continue
		}
		m, ok := snap.Metrics[ind]
		if !ok {
			log.Warn("metric missing from snapshot", "indicator", ind, "year", year)
			continue
		}
		el.Value = m.Value
		el.Trend = m.Trend + trendSuffix
		el.TrendClass = "metric-trend " + string(m.Polarity)
	}

	if c, ok := d.doc.Table(PopulationTableID).Get(); ok && d.tables.engine.IsTable(c) {
		rows := models.PopulationRows(GenerateSamplePopulationData(PopulationTableSize, year))
		if err := d.tables.Refresh(c, rows); err != nil {
			return err
		}
	}

	d.activeYear = year
	log.Debug("year propagated", "year", year)

	if dashboardActive {
		return d.initializers[models.PageDashboard](ctx, year)
	}
	return nil
}

// SelectYear handles a change on one year selector: every selector follows
// the new value and the year is propagated once.
func (d *Dashboard) SelectYear(ctx context.Context, selectorID string, raw string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.doc.Selector(selectorID).Present() {
		return errs.NewNotFoundError("year selector not found: " + selectorID)
	}
	year, err := models.ParseYear(raw)
	if err != nil {
		return err
	}
	for _, sel := range d.doc.Selectors() {
		sel.Value = year
	}
	return d.updateUIForYear(ctx, year)
}

func (d *Dashboard) ActivePage() models.PageID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.ActivePage().OrElse("")
}

func (d *Dashboard) ActiveYear() models.YearKey {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeYear
}

func (d *Dashboard) Snapshot() view.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Snapshot()
}

// TableData returns the configuration and current rows of an initialized table.
func (d *Dashboard) TableData(tableID string) (models.TableSpec, []models.TableRow, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.doc.Table(tableID).Get()
	if !ok || !c.Initialized || c.Spec == nil {
		return models.TableSpec{}, nil, errs.NewNotFoundError("table not available: " + tableID)
	}
	return *c.Spec, append([]models.TableRow(nil), c.Rows...), nil
}

func (d *Dashboard) initializerFor(spec pageSpec) pageInitializer {
	return func(ctx context.Context, year models.YearKey) error {
		log := logger.FromContext(ctx).With("page", spec.page)

		if err := d.renderCharts(ctx, spec, year); err != nil {
			return err
		}

		for _, id := range spec.tables {
			c, ok := d.doc.Table(id).Get()
			if !ok {
				log.Debug("table container missing", "table", id)
				continue
			}
			tbl, err := d.catalog.Table(ctx, id)
			if err != nil {
				return err
			}
			if err := d.tables.Ensure(c, tbl.Spec, tbl.Rows); err != nil {
				return err
			}
		}

		for _, id := range spec.blocks {
			el, ok := d.doc.Block(id).Get()
			if !ok {
				log.Debug("block container missing", "block", id)
				continue
			}
			block, err := d.catalog.Block(ctx, id)
			if err != nil {
				return err
			}
			el.Content = &block
		}
		return nil
	}
}

func (d *Dashboard) renderCharts(ctx context.Context, spec pageSpec, year models.YearKey) error {
	log := logger.FromContext(ctx).With("page", spec.page)

	if len(spec.charts) == 0 {
		return nil
	}
	if d.charts == nil {
		log.Debug("charts disabled, skipping chart setup")
		return nil
	}
	dataset, err := d.catalog.Dataset(ctx, spec.page, year)
	if err != nil {
		return err
	}
	for _, chart := range spec.charts {
		c, ok := d.doc.Chart(chart.id).Get()
		if !ok {
			log.Debug("chart container missing", "chart", chart.id)
			continue
		}
		bundle, ok := dataset.Bundle(chart.id)
		if !ok {
			log.Warn("no data for chart", "chart", chart.id, "year", year)
			continue
		}
		d.charts.Clear(c)
		d.charts.Render(c, chart.build(bundle))
	}
	return nil
}
