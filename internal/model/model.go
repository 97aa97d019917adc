// Package model holds the catalog entities and the read models built from them.
// Prices are shopspring decimals; how they are rendered to JSON is chosen by the
// binary that serves them, see cmd/server and cmd/catalogctl.
package model
