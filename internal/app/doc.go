// Package app contains the core application logic. It defines the App
// struct, its configuration, and the render lifecycle (resolve attributes,
// load mass tables, draw, write files), decoupled from any specific
// entrypoint like a CLI.
package app
