// Package config parses the launcher's environment-scoped config file into
// the extra arguments and properties to inject for one environment.
//
// The format is line based. A line that starts with a space or tab is a
// value, anything else is a section header. Headers are the literal "common"
// or an environment name, immediately followed by "Args" or "Properties"
// with no separator. Values under an Args section are taken verbatim after
// trimming; values under a Properties section split into key and value at
// the first '=', or become a key with an empty value when no '=' is present.
//
// Example:
//
//	commonProperties
//	  fabric.development=true
//	clientArgs
//	  --assetIndex=1.14.4-1.14
package config
