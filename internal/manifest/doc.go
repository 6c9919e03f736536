// Describes which products and platforms a run builds.
//
// A manifest is an optional TOML file. When the file is absent the built-in
// default table is used, so a plain invocation with no input still runs a
// complete pipeline. Fields left unset in the file fall back to the same
// defaults.
package manifest
