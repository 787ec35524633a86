// Package postman is a structural, tagged representation of a Postman
// Collection v2.1.0 document: Info, the recursive Item tree (folder or
// request), Request, Url, Body, Header, Auth, Variable, and example
// Response.
//
// Several Postman fields are documented to accept either a bare string or a
// structured object ("description", "url"). Rather than reject either
// shape, each such field peeks at the raw JSON's type and decodes it as a
// string or as the structured object accordingly; see Collection's doc
// comment for the cases in which decoding does fail.
package postman
