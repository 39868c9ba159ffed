// Package app implements the card services on top of a card repository
// and an image connector.
package app
