// Package manifest checks that the registry files on disk are usable by the
// installer client before they are served.
//
// For every route of a layout it parses the index, lists items[*].name, and loads
// {dir}/{name}.json for each item, requiring a name, a type and a files array.
// Components are checked concurrently. Every problem is collected rather than
// stopping at the first one.
package manifest
