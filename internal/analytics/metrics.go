package analytics

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ComputeKPIs calcula os indicadores do painel.
// Para uma tabela vazia: total 0, pedidos 0, categoria e crescimento "N/A".
func ComputeKPIs(table *dataset.Table) domain.KPISet {
	kpis := domain.KPISet{
		TopCategory: domain.NotAvailable,
	}

	if table.Len() == 0 {
		return kpis
	}

	kpis.TotalSales = TotalSales(table)
	kpis.TotalOrders, _ = CountDistinct(table, domain.ColumnOrderID)
	kpis.TopCategory = TopCategory(table)

	months := MonthlySales(table)
	kpis.MonthlyGrowthPct = MonthlyGrowth(months)
	if peak, ok := PeakMonth(months); ok {
		kpis.PeakMonth = &peak
	}

	return kpis
}

// TopCategory retorna a categoria com a maior soma de vendas.
// Em caso de empate vence a menor em ordem lexicográfica.
func TopCategory(table *dataset.Table) string {
	categories := sumTotalSalesBy(table, func(record domain.SalesRecord) []string {
		return []string{record.Category}
	})

	if len(categories) == 0 {
		return domain.NotAvailable
	}

	// categories já está em ordem lexicográfica, então só troca com valor estritamente maior
	top := categories[0]
	for _, category := range categories[1:] {
		if category.Total.GreaterThan(top.Total) {
			top = category
		}
	}

	return top.Keys[0]
}

// MonthlyGrowth é a variação percentual entre os dois últimos meses presentes.
// Não disponível com menos de dois meses ou quando o penúltimo mês soma zero.
func MonthlyGrowth(months []domain.MonthlyAggregate) domain.OptionalDecimal {
	if len(months) < 2 {
		return domain.OptionalDecimal{}
	}

	previous := months[len(months)-2].TotalSales
	last := months[len(months)-1].TotalSales

	change, ok := utils.PercentChange(previous, last)
	if !ok {
		return domain.OptionalDecimal{}
	}

	return domain.NewOptionalDecimal(change)
}

// PeakMonth retorna o mês de maior venda. Só existe com pelo menos dois meses; empate fica com o mais antigo.
func PeakMonth(months []domain.MonthlyAggregate) (time.Time, bool) {
	if len(months) < 2 {
		return time.Time{}, false
	}

	peak := months[0]
	for _, month := range months[1:] {
		if month.TotalSales.GreaterThan(peak.TotalSales) {
			peak = month
		}
	}

	return peak.PeriodStart, true
}
