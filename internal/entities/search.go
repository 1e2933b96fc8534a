package entities

type SearchLocation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type SearchResult struct {
	Summary   string           `json:"summary"`
	Locations []SearchLocation `json:"locations"`
}

// Empty reports a result with neither a summary nor any location.
func (r SearchResult) Empty() bool {
	return r.Summary == "" && len(r.Locations) == 0
}
