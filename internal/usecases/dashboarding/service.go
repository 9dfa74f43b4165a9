package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/analytics"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Service mantém a tabela carregada e atende as consultas do painel.
// A tabela nunca é alterada: a recarga cria uma nova e troca o ponteiro.
type Service struct {
	source      dataset.Source
	topProducts int
	now         func() time.Time

	mu    sync.RWMutex
	table *dataset.Table
	info  *domain.DatasetInfo
}

// NewService cria o serviço do painel. O dataset só fica disponível após ReloadDataset.
func NewService(source dataset.Source, topProducts int) *Service {
	if topProducts <= 0 {
		topProducts = analytics.DefaultTopProducts
	}

	return &Service{
		source:      source,
		topProducts: topProducts,
		now:         time.Now,
	}
}

// ReloadDataset carrega a origem e substitui a tabela em memória.
// Em caso de erro a tabela anterior continua sendo usada.
func (s *Service) ReloadDataset(ctx context.Context) (*domain.DatasetInfo, error) {
	logger := log.ForContext(ctx).WithField("dataset_source", s.source.Describe())
	startTime := time.Now()

	table, err := s.source.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar dataset")
		return nil, classifyLoadError(err)
	}

	version, err := utils.GenerateID()
	if err != nil {
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	info := &domain.DatasetInfo{
		Version:  version,
		Source:   s.source.Describe(),
		Rows:     table.Len(),
		Columns:  table.Columns(),
		LoadedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.table = table
	s.info = info
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"dataset_version": version,
		"dataset_rows":    info.Rows,
	}).Infof("Dataset carregado em %s", time.Since(startTime))

	copied := *info
	return &copied, nil
}

func classifyLoadError(err error) error {
	switch {
	case errors.Is(err, dataset.ErrMissingFile):
		return NewDashboardError(err, apiErrors.ErrDatasetNotFound, "Arquivo do dataset não encontrado")
	case errors.Is(err, dataset.ErrMalformedInput):
		return NewDashboardError(err, apiErrors.ErrDatasetMalformed, "Dataset com conteúdo inválido")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewDashboardError(err, apiErrors.ErrInternalServer, "Carga do dataset cancelada")
	default:
		return NewDashboardError(fmt.Errorf("%w: %w", ErrDatasetLoad, err), apiErrors.ErrDatabaseOperation, "Falha ao carregar vendas da origem")
	}
}

// snapshot retorna a tabela atual. O cálculo acontece fora do lock sobre a tabela imutável.
func (s *Service) snapshot() (*dataset.Table, *domain.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.table == nil {
		return nil, nil, NewDashboardError(ErrDatasetNotLoaded, apiErrors.ErrDatasetNotLoaded, "Nenhum dataset foi carregado")
	}

	return s.table, s.info, nil
}

// filtered aplica a consulta e devolve a tabela filtrada
func (s *Service) filtered(query *domain.DashboardQuery) (*dataset.Table, error) {
	table, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if query == nil {
		query = domain.NewDashboardQuery()
	}

	return analytics.Filter(table, analytics.ResolveSelection(table, query)), nil
}

func (s *Service) GetDashboard(ctx context.Context, query *domain.DashboardQuery) (*domain.Dashboard, error) {
	table, info, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	query = s.withDefaults(query)
	dashboard := analytics.BuildDashboard(table, query)
	dashboard.DatasetVersion = info.Version

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_version":  info.Version,
		"dataset_filtered": dashboard.FilteredRowCount,
	}).Debug("Painel recalculado")

	return dashboard, nil
}

func (s *Service) GetKPIs(ctx context.Context, query *domain.DashboardQuery) (*domain.KPIReport, error) {
	table, err := s.filtered(query)
	if err != nil {
		return nil, err
	}

	kpis := analytics.ComputeKPIs(table)
	return &domain.KPIReport{
		KPIs:    kpis,
		Display: analytics.FormatKPIs(kpis),
	}, nil
}

func (s *Service) GetTimeSeries(ctx context.Context, query *domain.DashboardQuery) ([]domain.TimeSeriesPoint, error) {
	table, err := s.filtered(query)
	if err != nil {
		return nil, err
	}
	return analytics.TimeSeries(table), nil
}

func (s *Service) GetTopProducts(ctx context.Context, query *domain.DashboardQuery) ([]domain.ProductTotal, error) {
	query = s.withDefaults(query)

	table, err := s.filtered(query)
	if err != nil {
		return nil, err
	}
	return analytics.TopProducts(table, query.TopProducts), nil
}

func (s *Service) GetRegionShare(ctx context.Context, query *domain.DashboardQuery) ([]domain.RegionTotal, error) {
	table, err := s.filtered(query)
	if err != nil {
		return nil, err
	}
	return analytics.RegionShare(table), nil
}

func (s *Service) GetCategoryBreakdown(ctx context.Context, query *domain.DashboardQuery) ([]domain.CategoryTotal, error) {
	table, err := s.filtered(query)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryBreakdown(table), nil
}

func (s *Service) GetMonthlySales(ctx context.Context, query *domain.DashboardQuery) ([]domain.MonthlyAggregate, error) {
	table, err := s.filtered(query)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlySales(table), nil
}

func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	table, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return &domain.FilterOptions{
		Regions:    analytics.DistinctValues(table, domain.ColumnCustomerRegion),
		Categories: analytics.DistinctValues(table, domain.ColumnCategory),
	}, nil
}

func (s *Service) GetDatasetInfo(ctx context.Context) (*domain.DatasetInfo, error) {
	_, info, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	copied := *info
	copied.Columns = append([]string{}, info.Columns...)
	return &copied, nil
}

// withDefaults copia a consulta aplicando o tamanho padrão do ranking de produtos
func (s *Service) withDefaults(query *domain.DashboardQuery) *domain.DashboardQuery {
	if query == nil {
		query = domain.NewDashboardQuery()
	}

	copied := *query
	if copied.TopProducts <= 0 {
		copied.TopProducts = s.topProducts
	}
	return &copied
}
