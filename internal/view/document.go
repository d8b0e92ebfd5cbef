package view

import (
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/pkg/helpers"
)

type PageSection struct {
	Page      models.PageID `json:"page"`
	ElementID string        `json:"elementId"`
	Active    bool          `json:"active"`
}

type MenuEntry struct {
	Page   models.PageID `json:"page"`
	Label  string        `json:"label"`
	Active bool          `json:"active"`
}

type YearSelector struct {
	ID    string         `json:"id"`
	Page  models.PageID  `json:"page"`
	Value models.YearKey `json:"value"`
}

// MetricElement is one headline panel: value text, trend text and the css
// class of the trend line.
type MetricElement struct {
	Indicator  models.Indicator `json:"indicator"`
	Value      string           `json:"value"`
	Trend      string           `json:"trend"`
	TrendClass string           `json:"trendClass"`
}

type ChartContainer struct {
	ID       string              `json:"id"`
	Page     models.PageID       `json:"page"`
	Engine   string              `json:"engine,omitempty"`
	Config   *models.ChartConfig `json:"config,omitempty"`
	Revision int                 `json:"revision"`
}

type TableContainer struct {
	ID          string            `json:"id"`
	Page        models.PageID     `json:"page"`
	Initialized bool              `json:"initialized"`
	Spec        *models.TableSpec `json:"spec,omitempty"`
	Rows        []models.TableRow `json:"rows"`
	Draws       int               `json:"draws"`
}

type BlockElement struct {
	ID      string        `json:"id"`
	Page    models.PageID `json:"page"`
	Content *models.Block `json:"content,omitempty"`
}

// Document is the mutable view state of one dashboard. It is not safe for
// concurrent use; the owning dashboard serializes access.
type Document struct {
	pageOrder []models.PageID
	pages     map[models.PageID]*PageSection
	menuOrder []models.PageID
	menu      map[models.PageID]*MenuEntry

	selectors     []*YearSelector
	pageSelectors map[models.PageID]*YearSelector

	metricOrder []models.Indicator
	metrics     map[models.Indicator]*MetricElement

	chartOrder []string
	charts     map[string]*ChartContainer
	tableOrder []string
	tables     map[string]*TableContainer
	blockOrder []string
	blocks     map[string]*BlockElement
}

func NewDocument(layout Layout) *Document {
	d := &Document{
		pages:         make(map[models.PageID]*PageSection),
		menu:          make(map[models.PageID]*MenuEntry),
		pageSelectors: make(map[models.PageID]*YearSelector),
		metrics:       make(map[models.Indicator]*MetricElement),
		charts:        make(map[string]*ChartContainer),
		tables:        make(map[string]*TableContainer),
		blocks:        make(map[string]*BlockElement),
	}

	for _, p := range layout.Menu {
		if _, dup := d.menu[p]; dup {
			continue
		}
		d.menuOrder = append(d.menuOrder, p)
		d.menu[p] = &MenuEntry{Page: p, Label: p.Label()}
	}

	for _, pl := range layout.Pages {
		if _, dup := d.pages[pl.Page]; dup {
			continue
		}
		d.pageOrder = append(d.pageOrder, pl.Page)
		d.pages[pl.Page] = &PageSection{Page: pl.Page, ElementID: pl.Page.ElementID()}

		if pl.YearSelector != "" {
			sel := &YearSelector{ID: pl.YearSelector, Page: pl.Page, Value: models.LatestYear()}
			d.selectors = append(d.selectors, sel)
			d.pageSelectors[pl.Page] = sel
		}
		for _, id := range pl.Charts {
			d.chartOrder = append(d.chartOrder, id)
			d.charts[id] = &ChartContainer{ID: id, Page: pl.Page}
		}
		for _, id := range pl.Tables {
			d.tableOrder = append(d.tableOrder, id)
			d.tables[id] = &TableContainer{ID: id, Page: pl.Page}
		}
		for _, id := range pl.Blocks {
			d.blockOrder = append(d.blockOrder, id)
			d.blocks[id] = &BlockElement{ID: id, Page: pl.Page}
		}
	}

	for _, ind := range layout.MetricPanels {
		if _, dup := d.metrics[ind]; dup {
			continue
		}
		d.metricOrder = append(d.metricOrder, ind)
		d.metrics[ind] = &MetricElement{Indicator: ind}
	}
	return d
}

func lookup[K comparable, V any](m map[K]*V, key K) helpers.Optional[*V] {
	if v, ok := m[key]; ok {
		return helpers.Some(v)
	}
	return helpers.None[*V]()
}

func (d *Document) Page(id models.PageID) helpers.Optional[*PageSection] {
	return lookup(d.pages, id)
}

func (d *Document) MenuEntry(id models.PageID) helpers.Optional[*MenuEntry] {
	return lookup(d.menu, id)
}

// DeactivateAll clears the active flag of every page section and menu entry.
func (d *Document) DeactivateAll() {
	for _, p := range d.pages {
		p.Active = false
	}
	for _, m := range d.menu {
		m.Active = false
	}
}

// ActivePage returns the page whose section is active, if any.
func (d *Document) ActivePage() helpers.Optional[models.PageID] {
	for _, id := range d.pageOrder {
		if d.pages[id].Active {
			return helpers.Some(id)
		}
	}
	return helpers.None[models.PageID]()
}

func (d *Document) Selector(id string) helpers.Optional[*YearSelector] {
	for _, s := range d.selectors {
		if s.ID == id {
			return helpers.Some(s)
		}
	}
	return helpers.None[*YearSelector]()
}

// PageSelector returns the year selector placed on a page.
func (d *Document) PageSelector(page models.PageID) helpers.Optional[*YearSelector] {
	return lookup(d.pageSelectors, page)
}

// FirstSelector returns the first year selector in document order.
func (d *Document) FirstSelector() helpers.Optional[*YearSelector] {
	if len(d.selectors) == 0 {
		return helpers.None[*YearSelector]()
	}
	return helpers.Some(d.selectors[0])
}

func (d *Document) Selectors() []*YearSelector {
	return d.selectors
}

func (d *Document) Metric(ind models.Indicator) helpers.Optional[*MetricElement] {
	return lookup(d.metrics, ind)
}

func (d *Document) Chart(id string) helpers.Optional[*ChartContainer] {
	return lookup(d.charts, id)
}

func (d *Document) Table(id string) helpers.Optional[*TableContainer] {
	return lookup(d.tables, id)
}

func (d *Document) Block(id string) helpers.Optional[*BlockElement] {
	return lookup(d.blocks, id)
}

// Snapshot is a detached copy of the document, ready to be serialized.
type Snapshot struct {
	ActivePage models.PageID    `json:"activePage,omitempty"`
	Menu       []MenuEntry      `json:"menu"`
	Pages      []PageSection    `json:"pages"`
	Selectors  []YearSelector   `json:"selectors"`
	Metrics    []MetricElement  `json:"metrics"`
	Charts     []ChartContainer `json:"charts"`
	Tables     []TableContainer `json:"tables"`
	Blocks     []BlockElement   `json:"blocks"`
}

func (d *Document) Snapshot() Snapshot {
	s := Snapshot{
		ActivePage: d.ActivePage().OrElse(""),
		Menu:       make([]MenuEntry, 0, len(d.menuOrder)),
		Pages:      make([]PageSection, 0, len(d.pageOrder)),
		Selectors:  make([]YearSelector, 0, len(d.selectors)),
		Metrics:    make([]MetricElement, 0, len(d.metricOrder)),
		Charts:     make([]ChartContainer, 0, len(d.chartOrder)),
		Tables:     make([]TableContainer, 0, len(d.tableOrder)),
		Blocks:     make([]BlockElement, 0, len(d.blockOrder)),
	}
	for _, id := range d.menuOrder {
		s.Menu = append(s.Menu, *d.menu[id])
	}
	for _, id := range d.pageOrder {
		s.Pages = append(s.Pages, *d.pages[id])
	}
	for _, sel := range d.selectors {
		s.Selectors = append(s.Selectors, *sel)
	}
	for _, ind := range d.metricOrder {
		s.Metrics = append(s.Metrics, *d.metrics[ind])
	}
	for _, id := range d.chartOrder {
		s.Charts = append(s.Charts, *d.charts[id])
	}
	for _, id := range d.tableOrder {
		t := *d.tables[id]
		t.Rows = append([]models.TableRow(nil), t.Rows...)
		s.Tables = append(s.Tables, t)
	}
	for _, id := range d.blockOrder {
		s.Blocks = append(s.Blocks, *d.blocks[id])
	}
	return s
}
