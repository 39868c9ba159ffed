// Package v1 contains the gin handlers, DTOs and route setup of the card wallet REST API.
package v1
