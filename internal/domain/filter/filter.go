// Package filter implementa el motor genérico de filtrado en memoria que
// comparten los listados (productos, facturas, asientos, contrapartes).
//
// Los predicados componen por conjunción (AND lógico) y son independientes
// entre sí: el orden de composición no altera el resultado. Un valor de
// filtro vacío o "all" es un no-op (coincide con todo). El filtrado se
// re-evalúa en cada petición sobre el snapshot que trajo el caso de uso;
// no se persiste estado de filtros.
package filter

import (
	"strings"
	"time"
)

// Predicate decide si un elemento pasa el filtro.
type Predicate[T any] func(T) bool

// MatchAll predicado neutro: acepta todo.
func MatchAll[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And compone predicados por conjunción. Sin argumentos equivale a MatchAll.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply devuelve el subconjunto de items que satisface el predicado.
// No muta la colección de entrada.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p(it) {
			out = append(out, it)
		}
	}
	return out
}

// TextSearch búsqueda de texto libre: substring insensible a mayúsculas y a
// tildes sobre los campos que extrae fields. Query vacío acepta todo.
func TextSearch[T any](query string, fields func(T) []string) Predicate[T] {
	q := Normalize(query)
	if q == "" {
		return MatchAll[T]()
	}
	return func(v T) bool {
		for _, f := range fields(v) {
			if strings.Contains(Normalize(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals filtro de igualdad exacta (categoría, estado, tipo de entidad).
// Valor vacío o "all" acepta todo.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	if value == "" || strings.EqualFold(value, "all") {
		return MatchAll[T]()
	}
	return func(v T) bool {
		return strings.EqualFold(field(v), value)
	}
}

// Range rango de fechas relativo al instante de la consulta.
type Range string

const (
	RangeAll    Range = ""
	RangeToday  Range = "today"
	RangeLast7  Range = "7d"
	RangeLast30 Range = "30d"
)

// DateRange filtro por rango relativo {hoy, últimos 7 días, últimos 30 días}
// respecto a now. Rango vacío o desconocido acepta todo.
func DateRange[T any](r Range, now time.Time, date func(T) time.Time) Predicate[T] {
	var start time.Time
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeToday:
		start = today
	case RangeLast7:
		start = today.AddDate(0, 0, -6)
	case RangeLast30:
		start = today.AddDate(0, 0, -29)
	default:
		return MatchAll[T]()
	}
	end := today.Add(24*time.Hour - time.Nanosecond)
	return func(v T) bool {
		d := date(v)
		return !d.Before(start) && !d.After(end)
	}
}
