// Package common contains constants shared by the userdesk client and the
// mock API.
package common

// APIKeyHeaderName carries the optional static credential on every request.
const APIKeyHeaderName = "x-api-key"

// Metadata keys of the durable persistence slot.
const (
	MetadataKeyToken = "session.token"
	MetadataKeyEmail = "session.email"
)
