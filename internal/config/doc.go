// Package config defines the format-agnostic settings model of massplot,
// along with the Loader interface implemented by the HCL and YAML packages.
//
// Settings are built in three layers: Default(), then a Patch read from an
// optional configuration file, then a Patch assembled from explicit
// command-line flags. Only fields a layer actually sets are applied.
package config
