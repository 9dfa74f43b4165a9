package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// render escreve o valor no formato pedido. O YAML é derivado do JSON para manter
// os mesmos nomes de campos e a representação dos decimais e de "N/A".
func render(w io.Writer, format string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	if format == formatJSON {
		_, err = w.Write(append(data, '\n'))
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	resetStyle(&node)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return err
	}
	return encoder.Close()
}

// resetStyle troca o estilo de fluxo herdado do JSON pelo estilo de bloco
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
