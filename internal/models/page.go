package models

// PageID identifies one dashboard section. Exactly one page is active at a
// time.
type PageID string

const (
	PageDashboard     PageID = "dashboard"
	PageStatistics    PageID = "statistics"
	PagePenduduk      PageID = "penduduk"
	PagePemerintahan  PageID = "pemerintahan"
	PageEkonomi       PageID = "ekonomi"
	PagePendidikan    PageID = "pendidikan"
	PageKesehatan     PageID = "kesehatan"
	PageInfrastruktur PageID = "infrastruktur"
	PageGeografi      PageID = "geografi"
	PageIndustri      PageID = "industri"
	PagePerdagangan   PageID = "perdagangan"
)

// Pages lists every page in menu order.
var Pages = []PageID{
	PageDashboard,
	PageStatistics,
	PagePenduduk,
	PagePemerintahan,
	PageEkonomi,
	PagePendidikan,
	PageKesehatan,
	PageInfrastruktur,
	PageGeografi,
	PageIndustri,
	PagePerdagangan,
}

var pageLabels = map[PageID]string{
	PageDashboard:     "Dashboard",
	PageStatistics:    "Statistik",
	PagePenduduk:      "Penduduk",
	PagePemerintahan:  "Pemerintahan",
	PageEkonomi:       "Ekonomi",
	PagePendidikan:    "Pendidikan",
	PageKesehatan:     "Kesehatan",
	PageInfrastruktur: "Infrastruktur",
	PageGeografi:      "Geografi",
	PageIndustri:      "Industri",
	PagePerdagangan:   "Perdagangan",
}

// ParsePage returns the PageID for a raw menu tag.
func ParsePage(raw string) (PageID, bool) {
	p := PageID(raw)
	_, ok := pageLabels[p]
	return p, ok
}

// Label is the menu caption of the page.
func (p PageID) Label() string {
	return pageLabels[p]
}

// ElementID is the id of the page section in the view document.
func (p PageID) ElementID() string {
	return string(p) + "-page"
}
