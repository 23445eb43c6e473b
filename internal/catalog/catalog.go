package catalog

import "strings"

// ===============================
// Service Catalog (estático)
// ===============================

// ServiceItem es un servicio del taller. Precios en COP, sin decimales.
// Express = se puede entregar el mismo día si toda la selección es express.
type ServiceItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Express     bool   `json:"express"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

type ServiceCategory struct {
	Name  string        `json:"category"`
	Items []ServiceItem `json:"items"`
}

var categories = []ServiceCategory{
	{
		Name: "Mantenimiento General",
		Items: []ServiceItem{
			{ID: "m1", Name: "Mto. Sencillo Gama 1", Price: 75000, Express: false},
			{ID: "m2", Name: "Mto. Completo Gama 1", Price: 110000, Express: false},
			{ID: "m3", Name: "Mto. Sencillo Gama 2", Price: 85000, Express: false},
			{ID: "m4", Name: "Mto. Completo Gama 2 (Incluye Tijera)", Price: 120000, Express: false},
			{ID: "m5", Name: "Mto. Suspensión Aire Gama 2", Price: 125000, Express: false},
			{ID: "m6", Name: "Mto. Suspensión Aire Gama 1", Price: 65000, Express: false},
			{ID: "m7", Name: "Mto. Suspensión Hidráulica Gama 1", Price: 45000, Express: false},
		},
	},
	{
		Name: "Llantas",
		Items: []ServiceItem{
			{ID: "l1", Name: "Despinchada", Price: 4000, Express: true},
			{ID: "l2", Name: "Cambio de Rin / Enradiada", Price: 30000, Express: true},
			{ID: "l3", Name: "Cobalada Rin", Price: 10000, Express: true},
			{ID: "l4", Name: "Tubelizada (por rueda)", Price: 25000, Express: false},
			{ID: "l5", Name: "Engrase Manzana Delantera/Trasera G1", Price: 10000, Express: false},
		},
	},
	{
		Name: "Frenos",
		Items: []ServiceItem{
			{ID: "f1", Name: "Purgada Parcial", Price: 10000, Express: true},
			{ID: "f2", Name: "Purgada Total", Price: 20000, Express: true},
			{ID: "f3", Name: "Mto. Frenos Hidráulicos Gama 1", Price: 40000, Express: false},
			{ID: "f4", Name: "Cambio Pastillas Disco Sencillo", Price: 15000, Express: true},
			{ID: "f5", Name: "Cambio de Borradores", Price: 10000, Express: true},
			{ID: "f6", Name: "Mto. Frenos SRAM (Der o Izq)", Price: 55000, Express: false},
			{ID: "f7", Name: "Purgada Frenos SRAM (Der o Izq)", Price: 25000, Express: true},
		},
	},
	{
		Name: "Sistema de Cambios",
		Items: []ServiceItem{
			{ID: "c1", Name: "Calibrada de Cambios", Price: 15000, Express: true},
			{ID: "c2", Name: "Cambio/Alineación de Uña", Price: 8000, Express: true},
			{ID: "c3", Name: "Cambio de Pacha o Cassette", Price: 20000, Express: true},
		},
	},
	{
		Name: "Engrasada y Ajustes",
		Items: []ServiceItem{
			{ID: "e1", Name: "Engrase de Centro o Caja", Price: 15000, Express: true},
			{ID: "e2", Name: "Engrase Caja de Dirección", Price: 10000, Express: true},
			{ID: "e3", Name: "Engrase Núcleo Sellado", Price: 20000, Express: false},
			{ID: "a1", Name: "Alistamiento o Puesta a Punto", Price: 35000, Express: true},
		},
	},
}

var byID = func() map[string]ServiceItem {
	m := make(map[string]ServiceItem)
	for _, cat := range categories {
		for _, it := range cat.Items {
			it.Category = cat.Name
			m[it.ID] = it
		}
	}
	return m
}()

// Categories devuelve el catálogo completo, en orden de presentación.
func Categories() []ServiceCategory {
	return categories
}

func Find(id string) (ServiceItem, bool) {
	it, ok := byID[id]
	return it, ok
}

func PriceOf(id string) (int, bool) {
	it, ok := byID[id]
	return it.Price, ok
}

func IsExpress(id string) (bool, bool) {
	it, ok := byID[id]
	return it.Express, ok
}

// TotalPrice suma los precios de los servicios seleccionados.
// IDs desconocidos no aportan al total.
func TotalPrice(ids []string) int {
	total := 0
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			total += it.Price
		}
	}
	return total
}

// Names arma el nombre legible de la selección ("A + B + C"),
// en el orden de selección.
func Names(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			names = append(names, it.Name)
		}
	}
	return strings.Join(names, " + ")
}

// AllExpress reporta si la selección completa es express.
// Conjunto vacío o ID desconocido → false (se asume turno de un día).
func AllExpress(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		it, ok := byID[id]
		if !ok || !it.Express {
			return false
		}
	}
	return true
}

// ===============================
// Codec service_id (CSV)
// ===============================

// SplitIDs decodifica el campo service_id ("l1,m1") preservando el orden.
func SplitIDs(encoded string) []string {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	parts := strings.Split(encoded, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// JoinIDs es la inversa de SplitIDs. Round-trip sin pérdida.
func JoinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// ValidIDs verifica que todos los IDs existan en el catálogo.
func ValidIDs(ids []string) bool {
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return false
		}
	}
	return true
}
