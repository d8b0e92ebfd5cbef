package models

// OrgUnit is one box of the village government structure chart.
type OrgUnit struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// Block is static content rendered into a placeholder element, such as the
// organization chart or a map placeholder.
type Block struct {
	Heading     string      `json:"heading,omitempty"`
	Description string      `json:"description,omitempty"`
	OrgLevels   [][]OrgUnit `json:"orgLevels,omitempty"`
}
