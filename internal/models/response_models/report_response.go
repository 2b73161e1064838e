package response_models

// Summary maps duration in minutes to total remaining sessions across the
// viewer's visible purchases.
type Summary map[int]int

type TrainerReportRow struct {
	Trainer      string `json:"trainer"`
	TotalMinutes int64  `json:"total_minutes"`
}

type CostReport struct {
	TotalCost float64 `json:"total_cost"`
}
