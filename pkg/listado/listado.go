// Package listado implements the list semantics every console screen shares:
// case-insensitive substring filtering that preserves order, and fixed-size
// slice pagination with a ceil page count.
package listado

import "strings"

// Filtrar keeps the items whose key contains termino, case-insensitively,
// in their original order. An empty termino keeps everything.
func Filtrar[T any](items []T, termino string, clave func(T) string) []T {
	if termino == "" {
		return items
	}
	termino = strings.ToLower(termino)
	filtrados := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(clave(it)), termino) {
			filtrados = append(filtrados, it)
		}
	}
	return filtrados
}

// Paginar returns the 1-based page of size porPagina. Out-of-range pages
// return an empty slice; the last page may be short.
func Paginar[T any](items []T, pagina, porPagina int) []T {
	if porPagina <= 0 || pagina <= 0 {
		return items
	}
	inicio := (pagina - 1) * porPagina
	if inicio >= len(items) {
		return []T{}
	}
	fin := inicio + porPagina
	if fin > len(items) {
		fin = len(items)
	}
	return items[inicio:fin]
}

// TotalPaginas is ceil(total / porPagina).
func TotalPaginas(total, porPagina int) int {
	if porPagina <= 0 {
		return 0
	}
	return (total + porPagina - 1) / porPagina
}
