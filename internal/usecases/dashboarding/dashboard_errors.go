package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos do painel
var (
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	ErrDatasetLoad      = errors.New("error loading dataset")
	ErrGenerateID       = errors.New("error generating dataset version")
)

// DashboardError é um erro com contexto adicional para o painel
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// APICode retorna o código de erro da API
func (e *DashboardError) APICode() string {
	return e.Code
}
