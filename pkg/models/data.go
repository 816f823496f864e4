package models

import (
	"encoding/json"
	"time"
)

// NormalizarData converte as representações de data que chegam do backend em
// um time.Time canônico. O Firestore pode devolver um time.Time nativo, o
// wrapper de serverTimestamp ({seconds, nanoseconds}) em documentos antigos,
// ou uma string RFC3339 vinda do armazenamento local. Valores irreconhecíveis
// viram o zero value.
func NormalizarData(v interface{}) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case *time.Time:
		if d != nil {
			return *d
		}
	case map[string]interface{}:
		if sec, ok := comoInt64(d["seconds"]); ok {
			ns, _ := comoInt64(d["nanoseconds"])
			return time.Unix(sec, ns)
		}
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t
		}
		// Formato usado pelo SQLite em colunas TIMESTAMP
		if t, err := time.Parse("2006-01-02 15:04:05", d); err == nil {
			return t.UTC()
		}
	case int64:
		return time.Unix(d, 0)
	case float64:
		return time.Unix(int64(d), 0)
	case json.Number:
		if sec, err := d.Int64(); err == nil {
			return time.Unix(sec, 0)
		}
	}
	return time.Time{}
}

// comoInt64 aceita as variantes numéricas produzidas pelos decoders (int,
// int64, float64, json.Number, string numérica).
func comoInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	case string:
		var num json.Number = json.Number(n)
		if i, err := num.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

func comoString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func comoBool(v interface{}) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	return false, false
}
