package domain

// FilterSelection define os valores permitidos por dimensão.
// OR dentro de uma dimensão, AND entre dimensões. Conjunto vazio não deixa passar nenhuma linha.
type FilterSelection struct {
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
}

// DashboardQuery é a entrada de um ciclo de renderização.
// Quando AllRegions/AllCategories é verdadeiro a dimensão usa todos os valores presentes no dataset.
type DashboardQuery struct {
	Regions       []string
	Categories    []string
	AllRegions    bool
	AllCategories bool
	TopProducts   int
}

// NewDashboardQuery cria uma consulta sem filtros (todas as regiões e categorias)
func NewDashboardQuery() *DashboardQuery {
	return &DashboardQuery{
		AllRegions:    true,
		AllCategories: true,
	}
}

// FilterOptions lista os valores distintos usados para montar os controles de filtro
type FilterOptions struct {
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
}
