package domain

import "time"

// Report is a printable analysis report assembled by the CLI commands.
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// TimePeriod is the date range a report covers.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

type ReportSection struct {
	Title   string
	Summary map[string]any
	Details []ReportDetail
}

type ReportDetail struct {
	Name        string
	Value       any
	Unit        string
	Description string
}
