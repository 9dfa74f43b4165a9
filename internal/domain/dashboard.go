package domain

import "time"

// Dashboard é o resultado completo de um ciclo de renderização
type Dashboard struct {
	Selection         FilterSelection    `json:"selection"`
	RowCount          int                `json:"row_count"`
	FilteredRowCount  int                `json:"filtered_row_count"`
	KPIs              KPISet             `json:"kpis"`
	Display           KPIDisplay         `json:"display"`
	MonthlySales      []MonthlyAggregate `json:"monthly_sales"`
	TimeSeries        []TimeSeriesPoint  `json:"time_series"`
	TopProducts       []ProductTotal     `json:"top_products"`
	RegionShare       []RegionTotal      `json:"region_share"`
	CategoryBreakdown []CategoryTotal    `json:"category_breakdown"`
	DatasetVersion    string             `json:"dataset_version,omitempty"`
}

// DatasetInfo descreve o dataset carregado em memória
type DatasetInfo struct {
	Version  string    `json:"version"`
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	Columns  []string  `json:"columns"`
	LoadedAt time.Time `json:"loaded_at"`
}
