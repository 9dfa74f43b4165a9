package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	queryRegion   = "region"
	queryCategory = "category"
	queryTop      = "top"
)

// parseDashboardQuery lê os filtros da URL.
// Parâmetro ausente seleciona todos os valores; presente e vazio seleciona nenhum.
// Valores podem ser repetidos (region=A&region=B) ou separados por vírgula (region=A,B).
func parseDashboardQuery(values url.Values) (*domain.DashboardQuery, error) {
	query := domain.NewDashboardQuery()

	if regions, ok := values[queryRegion]; ok {
		query.AllRegions = false
		query.Regions = splitValues(regions)
	}

	if categories, ok := values[queryCategory]; ok {
		query.AllCategories = false
		query.Categories = splitValues(categories)
	}

	if raw := values.Get(queryTop); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil || top <= 0 {
			return nil, fmt.Errorf("parâmetro %s deve ser um inteiro positivo: %q", queryTop, raw)
		}
		query.TopProducts = top
	}

	return query, nil
}

func splitValues(raw []string) []string {
	values := make([]string, 0, len(raw))
	seen := make(map[string]bool)

	for _, item := range raw {
		for _, value := range strings.Split(item, ",") {
			value = strings.TrimSpace(value)
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
	}

	return values
}
