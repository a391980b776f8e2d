package model

import "time"

// Report represents the complete result of scanning a source page
type Report struct {
	Subject   string    `json:"subject"`    // Subject derived from the URL (e.g., page title slug)
	SourceURL string    `json:"source_url"` // URL that was scanned
	FetchedAt time.Time `json:"fetched_at"` // When the scan occurred
	FromCache bool      `json:"from_cache"` // Whether the page came from the local cache
	FetchMeta FetchMeta `json:"fetch_meta"` // HTTP metadata from the fetch

	Records []LifespanRecord `json:"records"`           // All parsed office-holders, source order
	Summary *Summary         `json:"summary,omitempty"` // nil when no deceased records exist
	Skipped []SkippedRecord  `json:"skipped,omitempty"` // Cells dropped under the skip policy

	CurrentYear int `json:"current_year"` // Year substituted for living records in chart spans

	Narrative *Narrative `json:"narrative,omitempty"` // Optional LLM prose (never affects statistics)
}

// FetchMeta contains HTTP metadata from fetching the source
type FetchMeta struct {
	StatusCode   int    `json:"status_code"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}

// Narrative contains an optional LLM-generated description of the dataset.
// It is presentation prose only and is produced after aggregation.
type Narrative struct {
	Provider string `json:"provider"` // openai, ollama
	Model    string `json:"model"`
	Text     string `json:"text"`
}
