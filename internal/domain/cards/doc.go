// Package cards defines the loyalty card entity and the repository and
// service contracts built around it.
package cards
