// Package layout implements a small box-tree layout engine.
//
// Nodes flow their children along a row or column with gap, margin, border
// and padding, and fixed, percentage or auto sizes. After [Calculate], every
// node reports its border box, padding box and content box, plus the
// offset and client measurements element geometry is read from.
// Types are re-exported through the root boxrect package.
package layout
