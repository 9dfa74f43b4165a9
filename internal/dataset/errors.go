package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile indica que o caminho do dataset não existe
	ErrMissingFile = errors.New("dataset file not found")
	// ErrMalformedInput indica coluna obrigatória ausente ou valor que não pôde ser interpretado
	ErrMalformedInput = errors.New("malformed dataset")
)

// MissingFileError é retornado quando o arquivo do dataset não existe
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFile.Error(), e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// MalformedInputError descreve o problema encontrado no conteúdo do dataset.
// Row é a linha do arquivo (1 = cabeçalho) e fica zerado para erros de cabeçalho.
type MalformedInputError struct {
	Source string
	Row    int
	Column string
	Value  string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrMalformedInput.Error(), e.Source)
	if e.Row > 0 {
		msg = fmt.Sprintf("%s, linha %d", msg, e.Row)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s, coluna %s", msg, e.Column)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s, valor %q", msg, e.Value)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
