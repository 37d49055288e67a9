// Package output formats lint results for display or machine consumption.
//
// Three writers exist:
//   - text: styled terminal panels for the commit, rationale, and verdict (default)
//   - json: the full structured result
//   - plain: unstyled text, used for the optional --out file sink
//
// Use [GetWriter] for a format string, or [WriteResult] to render to stdout
// and optionally append the plain rendering to a file.
package output
