package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// apiCoder é implementado pelos erros dos casos de uso que carregam um código de API
type apiCoder interface {
	error
	APICode() string
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError converte o erro do caso de uso em resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var coded apiCoder
	if errors.As(err, &coded) {
		logger.Warn(message)
		apiErrors.WriteError(w, coded.APICode(), message, coded.Error())
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
