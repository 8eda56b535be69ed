package omdb

// NotAvailable is the sentinel OMDB uses for fields it has no data for.
const NotAvailable = "N/A"

// RawMovie is the wire shape of an OMDB title lookup. Every field except
// Ratings arrives as a string; "N/A" means the field is unavailable.
type RawMovie struct {
	Title        string      `json:"Title"`
	Year         string      `json:"Year"`
	Rated        string      `json:"Rated"`
	Released     string      `json:"Released"`
	Runtime      string      `json:"Runtime"`
	Genre        string      `json:"Genre"`
	Director     string      `json:"Director"`
	Writer       string      `json:"Writer"`
	Actors       string      `json:"Actors"`
	Plot         string      `json:"Plot"`
	Language     string      `json:"Language"`
	Country      string      `json:"Country"`
	Awards       string      `json:"Awards"`
	Poster       string      `json:"Poster"`
	Ratings      []RawRating `json:"Ratings"`
	Metascore    string      `json:"Metascore"`
	IMDBRating   string      `json:"imdbRating"`
	IMDBVotes    string      `json:"imdbVotes"`
	IMDBID       string      `json:"imdbID"`
	Type         string      `json:"Type"`
	DVD          string      `json:"DVD"`
	BoxOffice    string      `json:"BoxOffice"`
	Production   string      `json:"Production"`
	Website      string      `json:"Website"`
	TotalSeasons string      `json:"totalSeasons"`

	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// RawRating is a single (source, value) rating pair.
type RawRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// SearchItem is one entry of a ranked search page. It is deliberately
// lightweight: only enough to decide ordering and which ids to resolve.
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// SearchPage is a single page of ranked search results.
type SearchPage struct {
	Items        []SearchItem
	TotalResults int
}

// searchResponse is the wire shape of an OMDB search.
type searchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}
