// Package hcl provides the HCL implementation of config.Loader. A massplot
// configuration file may contain `sources`, `chart` and `log` blocks plus a
// few top-level attributes; every field is optional and overrides the
// matching default.
//
// Expressions are evaluated with the process environment exposed as the
// `env` variable and a small set of string functions, so a file can say
//
//	sources {
//	  reference_dir = "${env.RESULTS}/tempo-fusion-temoin"
//	}
package hcl
