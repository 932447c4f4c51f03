package models

// MonthRecord is one simulated month of a restaurant run.
type MonthRecord struct {
	RunID       string  `json:"runId"`
	Month       int     `json:"month"`
	MealsSold   float64 `json:"mealsSold"`
	MarketPrice float64 `json:"marketPrice"`
	LaborCost   float64 `json:"laborCost"`
	RawProfit   float64 `json:"rawProfit"`
	Profit      float64 `json:"profit"`
	Partnership bool    `json:"partnership"`
}
