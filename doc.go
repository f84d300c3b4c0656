// Package boxrect takes plain-data snapshots of an element's layout box.
//
// Users import this single package for the complete public API: the [Rect]
// record, the [Element] measurements it is read from, and the layout types
// of the box tree that implements them.
package boxrect
