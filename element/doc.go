// Package element defines the UI tree: the Element interface, the closed set
// of kinds and the Box, Text, Line, Button and Node variants
//
// Parents own their children exclusively. Elements that need to refer to
// one another without owning do so by ID, resolved with Find.
package element
