// Package domain contains the core entities of the food catalog:
// hierarchy entries (category → subcategory → food items) and nutrition
// records (per-item calorie and serving data). Types here are plain data
// with no dependencies on storage or transport.
package domain
