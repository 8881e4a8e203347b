// Package utils provides common conversion helpers for the inventory-manager application.
// They normalise loosely typed values (JSON cells, form fields) into the strings and
// booleans the import pipeline works with.
package utils
