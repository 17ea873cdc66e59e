// Package formats provides parsers for navigation data file formats.
package formats
