// Package naming provides the case conversions used to derive page ids and
// fallback titles from operation ids and paths.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
