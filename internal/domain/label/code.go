// Package label contém a lógica pura de etiquetas de estoque: extração do
// código a partir do conteúdo lido do QR, tolerante aos formatos históricos
// (JSON simples, JSON duplamente codificado, texto cru).
package label

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/cozinhapro/cozinha-api/internal/domain"
)

// Chaves conhecidas em payloads JSON de QR, em ordem de preferência.
// "lt" é o campo histórico das etiquetas impressas.
var codeKeys = []string{"lt", "codigo", "code", "etiqueta", "label"}

// codePattern reconhece códigos no formato das etiquetas impressas,
// ex.: IE-FA-271225-90D.
var codePattern = regexp.MustCompile(`[A-Z]{2,4}-[A-Z]{2,4}-\d{4,8}-\d+[A-Z]{0,2}`)

const maxDecodePasses = 3

// ParseCode resolve o código da etiqueta a partir do texto livre lido do QR.
// Cadeia de fallback documentada: JSON → chaves conhecidas → segunda passada
// de decodificação (payload duplamente codificado) → regex do padrão de
// código → o próprio texto cru.
func ParseCode(raw string) (string, error) {
	code := parse(strings.TrimSpace(raw), 0)
	if code == "" {
		return "", domain.ErrInvalidQRPayload
	}
	return code, nil
}

func parse(s string, pass int) string {
	if s == "" || pass >= maxDecodePasses {
		return strings.TrimSpace(s)
	}

	// Objeto JSON: procurar as chaves conhecidas.
	if strings.HasPrefix(s, "{") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(s), &obj); err == nil {
			for _, k := range codeKeys {
				if v, ok := obj[k].(string); ok && strings.TrimSpace(v) != "" {
					return parse(strings.TrimSpace(v), pass+1)
				}
			}
			// Objeto válido sem chave conhecida: tentar o padrão no texto bruto.
			if m := codePattern.FindString(s); m != "" {
				return m
			}
			return ""
		}
	}

	// String JSON (payload duplamente codificado): desembrulhar e repassar.
	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			return parse(strings.TrimSpace(inner), pass+1)
		}
	}

	if m := codePattern.FindString(s); m != "" {
		return m
	}

	// Sem estrutura reconhecida: o texto cru é o código.
	return s
}
