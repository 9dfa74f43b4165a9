// Package analytics implementa o filtro, as agregações e os indicadores do painel de vendas.
// Todas as funções são puras: recebem uma tabela imutável e devolvem estruturas novas.
package analytics

import (
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Filter mantém as linhas cuja região está em selection.Regions E cuja categoria está em selection.Categories.
// A comparação é exata. Um conjunto vazio resulta em tabela vazia.
func Filter(table *dataset.Table, selection domain.FilterSelection) *dataset.Table {
	if table == nil {
		return dataset.NewTable(nil)
	}

	regions := toSet(selection.Regions)
	categories := toSet(selection.Categories)

	indices := make([]int, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		record := table.At(i)
		if regions[record.CustomerRegion] && categories[record.Category] {
			indices = append(indices, i)
		}
	}

	return table.Subset(indices)
}

// DefaultSelection seleciona todas as regiões e categorias presentes na tabela, inclusive células vazias
func DefaultSelection(table *dataset.Table) domain.FilterSelection {
	return domain.FilterSelection{
		Regions:    uniqueValues(table, domain.ColumnCustomerRegion, false),
		Categories: uniqueValues(table, domain.ColumnCategory, false),
	}
}

// ResolveSelection aplica os padrões da consulta: dimensões marcadas como "todas" usam os valores da tabela
func ResolveSelection(table *dataset.Table, query *domain.DashboardQuery) domain.FilterSelection {
	if query == nil {
		return DefaultSelection(table)
	}

	selection := domain.FilterSelection{
		Regions:    append([]string{}, query.Regions...),
		Categories: append([]string{}, query.Categories...),
	}

	if query.AllRegions {
		selection.Regions = uniqueValues(table, domain.ColumnCustomerRegion, false)
	}
	if query.AllCategories {
		selection.Categories = uniqueValues(table, domain.ColumnCategory, false)
	}

	return selection
}

// DistinctValues retorna os valores distintos não vazios da coluna na ordem em que aparecem
func DistinctValues(table *dataset.Table, column string) []string {
	return uniqueValues(table, column, true)
}

func uniqueValues(table *dataset.Table, column string, skipBlank bool) []string {
	values := make([]string, 0)
	seen := make(map[string]bool)

	for i := 0; i < table.Len(); i++ {
		value, ok := table.At(i).Field(column)
		if !ok || seen[value] || (skipBlank && value == "") {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	return values
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
