package models

// ReportSummary aggregates appointment counts and revenue over a period.
type ReportSummary struct {
	Total         int64   `bson:"total" json:"total"`
	Confirmed     int64   `bson:"confirmed" json:"confirmed"`
	Completed     int64   `bson:"completed" json:"completed"`
	Cancelled     int64   `bson:"cancelled" json:"cancelled"`
	Revenue       float64 `bson:"revenue" json:"revenue"` // Sum of paid appointments
	AverageTicket float64 `bson:"average_ticket" json:"average_ticket"`
}

// ServicePopularity ranks a service by booking volume.
type ServicePopularity struct {
	ServiceID string  `bson:"_id" json:"service_id"`
	Name      string  `bson:"name" json:"name"`
	Count     int64   `bson:"count" json:"count"`
	Revenue   float64 `bson:"revenue" json:"revenue"`
}

// DailyVolume is one day's appointment count and revenue.
type DailyVolume struct {
	Date    string  `bson:"_id" json:"date"`
	Count   int64   `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// Report is the staff-facing statistics payload.
type Report struct {
	Summary     ReportSummary       `json:"summary"`
	TopServices []ServicePopularity `json:"top_services"`
	Daily       []DailyVolume       `json:"daily"`
}
