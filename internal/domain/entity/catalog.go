package entity

// CatalogSnapshot vista inmutable y ordenada del catálogo en un instante.
// Los servicios de dominio (resolver, dashboard) la reciben completa y no la
// mutan: toda modificación produce un Product de reemplazo que el repositorio
// aplica con verificación de versión.
type CatalogSnapshot []Product
