// Package transpile is the transpiler engine: the URL Normalizer, the
// Schema Inferrer, and the Engine that walks a postman.Collection and
// assembles an openapi.Document.
//
// The Engine is single-threaded and synchronous — the whole walk runs to
// completion inside one call to Engine.Transpile, with all mutable state
// (servers, paths, components, the operation-id registry, the variable
// scope stack) owned by the Engine value for the duration of that call and
// discarded on return. Two concurrent Engine instances share nothing.
package transpile
