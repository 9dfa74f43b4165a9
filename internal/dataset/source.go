package dataset

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Source é a origem de onde o dataset é carregado
type Source interface {
	Load(ctx context.Context) (*Table, error)
	Describe() string
}

// FileSource carrega o dataset de um arquivo local
type FileSource struct {
	Path    string
	Options Options
}

func NewFileSource(path string, opts Options) *FileSource {
	return &FileSource{
		Path:    path,
		Options: opts,
	}
}

func (s *FileSource) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadWithOptions(s.Path, s.Options)
}

func (s *FileSource) Describe() string {
	return fmt.Sprintf("file:%s", s.Path)
}

// RecordLister é implementado pelo repositório de vendas
type RecordLister interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

// RepositorySource carrega o dataset a partir do banco de dados
type RepositorySource struct {
	repository RecordLister
	name       string
}

func NewRepositorySource(repository RecordLister, name string) *RepositorySource {
	return &RepositorySource{
		repository: repository,
		name:       name,
	}
}

func (s *RepositorySource) Load(ctx context.Context) (*Table, error) {
	records, err := s.repository.ListSalesRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar vendas do banco de dados")
	}
	return NewTable(records), nil
}

func (s *RepositorySource) Describe() string {
	return fmt.Sprintf("postgres:%s", s.name)
}
