// Package fanyi is a command-line client for the Baidu Fanyi translation
// API. Each subpackage can also be used independently:
//
//   - minifmt: the %-escape output template engine
//   - translate: the signed HTTP API client
//   - textutil: whitespace collapsing and request-size chunking
//   - langs: language code normalization
//   - config: config file and credential loading
//   - locale: localized CLI messages
//   - watch: re-run-on-change support for --watch
//
// The root package ties templates and translation rows together:
//
//	out, err := fanyi.FormatRows(
//	    []string{"%s\n%s\n"},
//	    result.Rows,
//	)
package fanyi
