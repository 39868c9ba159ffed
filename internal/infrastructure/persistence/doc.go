// Package persistence provides the card repository implementations.
// GORM is the ORM layer over sqlite, PostgreSQL or MySQL; an optional
// redis backed decorator caches card listings.
package persistence
