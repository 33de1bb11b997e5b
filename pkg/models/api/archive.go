package api

import "time"

type Category struct {
	Name string `json:"name"`
}

type ArchiveFile struct {
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mod_time"`
}

type ChartFile struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
	Href    string    `json:"href"`
}

type FetchOutcome struct {
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Path        string     `json:"path,omitempty"`
	Size        int64      `json:"size,omitempty"`
	RetrievedAt *time.Time `json:"retrieved_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type FetchReport struct {
	Category  string         `json:"category"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Outcomes  []FetchOutcome `json:"outcomes"`
}
