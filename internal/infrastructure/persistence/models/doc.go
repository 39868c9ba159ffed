// Package models holds the GORM database models and their conversion to domain entities.
package models
