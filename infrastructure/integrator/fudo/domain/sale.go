package fudodomain

// Sale é o registro bruto de venda retornado pela API da Fudo.
// A API segue o formato JSON:API: os campos de negócio vivem em "attributes"
// e o esquema não é garantido entre respostas (nomes de campos de data e
// valor variam), então o mapa bruto é preservado para o normalizador decidir
type Sale struct {
	ID         string         `json:"id,omitempty"`
	Type       string         `json:"type,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Field busca um atributo pelo nome
func (s Sale) Field(key string) (any, bool) {
	if s.Attributes == nil {
		return nil, false
	}
	value, ok := s.Attributes[key]
	return value, ok
}

// SaleFromRaw converte um objeto bruto da resposta em Sale. Respostas reais
// trazem os campos dentro de "attributes"; respostas antigas (e os dados de
// exemplo) trazem tudo no nível raiz, então nesse caso o próprio objeto vira
// o mapa de atributos
func SaleFromRaw(raw map[string]any) Sale {
	sale := Sale{}

	if id, ok := raw["id"].(string); ok {
		sale.ID = id
	}
	if typ, ok := raw["type"].(string); ok {
		sale.Type = typ
	}

	if attrs, ok := raw["attributes"].(map[string]any); ok {
		sale.Attributes = attrs
		return sale
	}

	sale.Attributes = raw
	return sale
}
