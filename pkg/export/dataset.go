// Package export renders tabular reports as CSV or PDF documents.
package export

// Dataset defines tabular export content. Rows are keyed by header.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Section is a titled table inside a report.
type Section struct {
	Heading string
	Data    Dataset
}

// Report is a titled document made of one or more sections.
type Report struct {
	Title    string
	Subtitle []string
	Sections []Section
}
