// Package models defines the provider data shared across packages: the
// published range Record and the service/region Selector that picks records.
package models
