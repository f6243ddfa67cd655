// Package format converts DON trees to and from YAML and JSON.
//
// Conversions keep the order of entries: nodes become yaml.MapSlice
// values, or sequences when they are list shaped, and YAML mappings are
// read in document order.
package format
