// Package formatter provides small, pure string formatting helpers.
//
//   - Date renders a time.Time with a token layout such as "yyyy-MM-dd hh:mm:ss.S".
//   - Ellipsis shortens a string to "head...tail", optionally counting East Asian
//     wide characters as two columns.
//   - HyphenToHump and HumpToHyphen convert between kebab-case and camelCase.
//   - Reverse and ToBoolean cover the remaining one-liners.
//
// None of the helpers return errors: unsupported input is returned unchanged.
// All functions are safe for concurrent use.
package formatter
