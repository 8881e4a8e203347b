// Package models defines the inventory data structures: the Product record shared
// by the parser, reconciler and stores, the manual entry forms, and the report
// payloads returned by the service.
package models
