package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/analytics"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

type reportOptions struct {
	file       string
	delimiter  string
	sheet      string
	regions    []string
	categories []string
	top        int
	output     string
	verbose    bool
}

// newRootCmd monta o comando que renderiza o painel uma única vez a partir de um arquivo
func newRootCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o painel de vendas a partir de um arquivo CSV, TSV ou XLSX",
		Long: `Carrega o dataset de vendas, aplica os filtros de região e categoria
e imprime os indicadores e os dados dos gráficos em JSON ou YAML.

Exemplos:
  report --file sales.csv
  report --file sales.csv --region East --region West --category Technology --top 5 --output yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Arquivo do dataset (.csv, .tsv ou .xlsx)")
	flags.StringVar(&opts.delimiter, "delimiter", "", "Separador de campos (padrão: vírgula, ou tab para .tsv)")
	flags.StringVar(&opts.sheet, "sheet", "", "Planilha a ser lida em arquivos .xlsx")
	flags.StringSliceVarP(&opts.regions, "region", "r", nil, "Regiões selecionadas (padrão: todas)")
	flags.StringSliceVarP(&opts.categories, "category", "c", nil, "Categorias selecionadas (padrão: todas)")
	flags.IntVar(&opts.top, "top", analytics.DefaultTopProducts, "Quantidade de produtos no ranking")
	flags.StringVarP(&opts.output, "output", "o", formatJSON, "Formato de saída: json ou yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Exibe logs de depuração")
	_ = cmd.MarkFlagRequired("file")

	cmd.AddCommand(newTokenCmd())

	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if opts.top <= 0 {
		return fmt.Errorf("--top deve ser positivo: %d", opts.top)
	}

	format := strings.ToLower(opts.output)
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("formato de saída inválido: %q", opts.output)
	}

	source := dataset.NewFileSource(opts.file, dataset.Options{
		Delimiter: config.Dataset{Delimiter: opts.delimiter}.DelimiterRune(),
		Sheet:     opts.sheet,
	})

	service := dashboarding.NewService(source, opts.top)
	if _, err := service.ReloadDataset(cmd.Context()); err != nil {
		return err
	}

	query := domain.NewDashboardQuery()
	query.TopProducts = opts.top
	if cmd.Flags().Changed("region") {
		query.AllRegions = false
		query.Regions = opts.regions
	}
	if cmd.Flags().Changed("category") {
		query.AllCategories = false
		query.Categories = opts.categories
	}

	dashboard, err := service.GetDashboard(cmd.Context(), query)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), format, dashboard)
}

