// Package render draws the two-panel comparison figure of an attribute.
//
// The top panel plots the reference masses and carries the attribute name as
// its title; the bottom panel plots the fusion masses with the time axis and
// the category legend. Every category keeps the same color and dash style in
// both panels. Panels are drawn with go-chart and stacked into one raster,
// which is then written as PNG or embedded into a single-page PDF.
package render
