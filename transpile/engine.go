package transpile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oastools/postman2openapi/openapi"
	"github.com/oastools/postman2openapi/postman"
)

// Options generalizes the top-level pipeline defaults of spec.md §4.3 step 1
// into overridable fields, following the teacher's minimal-config posture:
// there is no config file or environment parsing here, just a struct of
// defaults a caller may override before calling Transpile.
type Options struct {
	// DefaultTitle is used when collection.info.name is empty.
	DefaultTitle string

	// DefaultVersion is used when collection.info.version is empty.
	DefaultVersion string

	// DefaultResponseDescription is used for the synthesized "200" response
	// of a request item with no recorded examples.
	DefaultResponseDescription string

	// Logger receives a Debug record for every per-request recovery
	// described in spec.md §7. Defaults to slog.Default() when nil.
	Logger *slog.Logger

	// Diagnostics, when non-nil, also collects every per-request recovery
	// as a plain Diagnostic, for callers that want programmatic access
	// without parsing log output.
	Diagnostics *Diagnostics
}

// DefaultOptions returns the options Transpile uses when none are supplied.
func DefaultOptions() Options {
	return Options{
		DefaultTitle:               "API",
		DefaultVersion:              "1.0.0",
		DefaultResponseDescription: "Successful response",
	}
}

var ignoredHeaders = map[string]bool{
	"content-type":   true,
	"accept":         true,
	"authorization":  true,
	"cookie":         true,
	"host":           true,
	"content-length": true,
	"user-agent":     true,
}

// Engine walks a postman.Collection and assembles an openapi.Document. An
// Engine value is single-use: construct one with New, call Transpile once,
// discard it.
type Engine struct {
	opts Options

	doc *openapi.Document

	serverSeen  map[string]bool
	serverOrder []string

	tagSeen map[string]bool

	operationIDs *operationIDRegistry

	components *openapi.Components
}

// New constructs an Engine with the given options. Zero-valued fields in
// opts fall back to DefaultOptions.
func New(opts Options) *Engine {
	defaults := DefaultOptions()
	if opts.DefaultTitle == "" {
		opts.DefaultTitle = defaults.DefaultTitle
	}
	if opts.DefaultVersion == "" {
		opts.DefaultVersion = defaults.DefaultVersion
	}
	if opts.DefaultResponseDescription == "" {
		opts.DefaultResponseDescription = defaults.DefaultResponseDescription
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		opts:         opts,
		serverSeen:   map[string]bool{},
		tagSeen:      map[string]bool{},
		operationIDs: newOperationIDRegistry(),
		components:   &openapi.Components{},
	}
}

// Transpile produces an OpenAPI document from a Postman collection, per
// spec.md §4.3's top-level pipeline.
func (e *Engine) Transpile(c *postman.Collection) *openapi.Document {
	title := c.Info.Name
	if title == "" {
		title = e.opts.DefaultTitle
	}
	version := c.Info.Version
	if version == "" {
		version = e.opts.DefaultVersion
	}

	e.doc = &openapi.Document{
		OpenAPI: "3.0.3",
		Info: &openapi.Info{
			Title:       title,
			Description: c.Info.Description.String(),
			Version:     version,
		},
		Paths: openapi.NewPaths(),
	}

	rootScope := pushVariableScope(nil, c.Variable)
	e.registerDeclaredAuth(c.Auth)
	e.walk(c.Item, rootScope, c.Auth, nil, "", "")

	for _, url := range e.serverOrder {
		e.doc.Servers = append(e.doc.Servers, &openapi.Server{URL: url})
	}
	if !e.components.IsEmpty() {
		e.doc.Components = e.components
	}
	return e.doc
}

// walk is the depth-first traversal of item[] (spec.md §4.3 step 3).
// tagPath accumulates enclosing folder names; tagDescription is the nearest
// enclosing folder's description, used if tagPath becomes non-empty at a
// request item.
func (e *Engine) walk(items []postman.Item, scope *variableScope, auth *postman.Auth, tagPath []string, tagDescription, itemPath string) {
	for _, item := range items {
		childPath := itemPath
		if item.Name != "" {
			if childPath != "" {
				childPath += " / " + item.Name
			} else {
				childPath = item.Name
			}
		}

		if item.IsFolder() {
			childScope := pushVariableScope(scope, item.Variable)
			childAuth := auth
			if item.Auth != nil {
				childAuth = item.Auth
				// A folder's own declared auth is registered here, at the
				// point of declaration, independent of whether a deeper
				// request overrides it for its own operation — otherwise an
				// overridden folder scheme never appears in components at
				// all (spec.md §8 S4).
				e.registerDeclaredAuth(item.Auth)
			}
			childTagPath, childTagDescription := tagPath, tagDescription
			if item.Name != "" {
				childTagPath = append(append([]string{}, tagPath...), item.Name)
				childTagDescription = item.Description.String()
			}
			e.walk(item.Item, childScope, childAuth, childTagPath, childTagDescription, childPath)
			continue
		}
		if item.Request == nil {
			continue
		}
		itemAuth := auth
		if item.Request.Auth != nil {
			itemAuth = item.Request.Auth
		}
		e.processRequest(item, scope, itemAuth, tagPath, tagDescription, childPath)
	}
}

// processRequest is spec.md §4.3's "Request assembly" (a-h).
func (e *Engine) processRequest(item postman.Item, scope *variableScope, auth *postman.Auth, tagPath []string, tagDescription, itemPath string) {
	req := item.Request

	// a. URL normalization, server registration.
	norm := NormalizeURL(req.URL)
	if norm.ServerURL != "" {
		e.registerServer(norm.ServerURL)
	}
	templatePath := norm.TemplatePath
	if templatePath == "" {
		templatePath = "/"
	}

	method := strings.ToLower(req.Method)
	if method == "" {
		method = openapi.MethodGet
	}

	// b. Look up or create the path item and operation; a collision merges
	// responses into the existing operation rather than creating a new one.
	pathItem := e.doc.Paths.GetOrCreate(templatePath)
	if op, exists := pathItem.Operations.Get(method); exists {
		op.Responses = e.assembleResponses(item, itemPath, op.Responses)
		return
	}

	op := &openapi.Operation{}
	if len(tagPath) > 0 {
		tagName := strings.Join(tagPath, " / ")
		e.ensureTag(tagName, tagDescription)
		op.Tags = []string{tagName}
	}

	// h. summary/description.
	op.Summary = substituteVariables(item.Name, scope)
	op.Description = substituteVariables(req.Description.String(), scope)

	// c. Parameters.
	op.Parameters = e.buildParameters(norm, req.Header)

	// d. Request body.
	op.RequestBody = e.buildRequestBody(req.Body, itemPath)

	// f. Responses.
	op.Responses = e.assembleResponses(item, itemPath, nil)

	// e. Security.
	op.Security = e.resolveSecurity(auth, itemPath)

	// g. operationId.
	seed := operationIDSeed(item.Name, method, templatePath)
	op.OperationID = e.operationIDs.reserve(seed)

	pathItem.Operations.Set(method, op)
}

func (e *Engine) registerServer(url string) {
	if e.serverSeen[url] {
		return
	}
	e.serverSeen[url] = true
	e.serverOrder = append(e.serverOrder, url)
}

func (e *Engine) ensureTag(name, description string) {
	if e.tagSeen[name] {
		return
	}
	e.tagSeen[name] = true
	e.doc.Tags = append(e.doc.Tags, &openapi.Tag{Name: name, Description: description})
}

// buildParameters assembles path, then query, then header parameters, in
// that order (spec.md §4.3.c, §5 ordering guarantees).
func (e *Engine) buildParameters(norm NormalizedURL, headers []postman.Header) []*openapi.Parameter {
	var params []*openapi.Parameter

	for _, p := range norm.PathParams {
		param := &openapi.Parameter{
			Name:        p.Name,
			In:          openapi.InPath,
			Required:    true,
			Description: p.Description,
			Schema:      &openapi.Schema{Type: openapi.TypeString},
		}
		if p.Example != "" {
			param.Example = p.Example
		}
		params = append(params, param)
	}

	for _, q := range norm.QueryParams {
		schema := &openapi.Schema{Type: openapi.TypeString}
		if len(q.Enum) > 0 {
			schema.Enum = q.Enum
		}
		param := &openapi.Parameter{
			Name:        q.Name,
			In:          openapi.InQuery,
			Description: q.Description,
			Schema:      schema,
		}
		if q.Example != "" {
			param.Example = q.Example
		}
		params = append(params, param)
	}

	for _, h := range headers {
		if h.Disabled || ignoredHeaders[strings.ToLower(h.Key)] {
			continue
		}
		param := &openapi.Parameter{
			Name:        h.Key,
			In:          openapi.InHeader,
			Required:    true,
			Description: h.Description.String(),
			Schema:      &openapi.Schema{Type: openapi.TypeString},
		}
		if h.Value != "" {
			param.Example = h.Value
		}
		params = append(params, param)
	}

	return params
}

// rawBodyMediaType maps a raw body's preview-language hint to a media type
// (spec.md §4.3.d).
func rawBodyMediaType(language string) string {
	switch strings.ToLower(language) {
	case "json":
		return "application/json"
	case "xml":
		return "application/xml"
	case "html":
		return "text/html"
	case "javascript":
		return "application/javascript"
	default:
		return "text/plain"
	}
}

func (e *Engine) buildRequestBody(body *postman.Body, itemPath string) *openapi.RequestBody {
	if body == nil || body.Mode == "" {
		return nil
	}

	switch body.Mode {
	case postman.BodyModeRaw:
		if body.Raw != "" && strings.ToLower(body.Language()) == "json" && !json.Valid([]byte(body.Raw)) {
			logRecovery(e.opts.Logger, e.opts.Diagnostics, itemPath, DiagMalformedJSON, "raw request body is not valid JSON, falling back to string")
		}
		return wrapSingleContent(rawBodyMediaType(body.Language()), InferSchema(body.Raw, body.Language()))
	case postman.BodyModeURLEncoded:
		return wrapSingleContent("application/x-www-form-urlencoded", InferFormSchema(body.URLEncoded))
	case postman.BodyModeFormData:
		return wrapSingleContent("multipart/form-data", InferFormSchema(body.FormData))
	case postman.BodyModeFile:
		return wrapSingleContent("application/octet-stream", &openapi.Schema{Type: openapi.TypeString, Format: "binary"})
	case postman.BodyModeGraphQL:
		return wrapSingleContent("application/json", InferGraphQLSchema(body.GraphQL))
	default:
		logRecovery(e.opts.Logger, e.opts.Diagnostics, itemPath, DiagUnknownBodyMode, fmt.Sprintf("unknown body mode %q", body.Mode))
		return nil
	}
}

func wrapSingleContent(mediaType string, schema *openapi.Schema) *openapi.RequestBody {
	content := openapi.NewContentMap()
	content.Set(mediaType, &openapi.MediaType{Schema: schema, Example: schema.Example})
	return &openapi.RequestBody{Content: content, Required: true}
}

// assembleResponses builds (or merges into) an operation's Responses, per
// spec.md §4.3.f. Passing an existing Responses merges; passing nil starts
// fresh.
func (e *Engine) assembleResponses(item postman.Item, itemPath string, existing *openapi.Responses) *openapi.Responses {
	responses := existing
	if responses == nil {
		responses = openapi.NewResponses()
	}

	if len(item.Response) == 0 {
		if responses.Len() == 0 {
			responses.Set("200", &openapi.Response{Description: e.opts.DefaultResponseDescription})
		}
		return responses
	}

	for _, example := range item.Response {
		code := strconv.Itoa(example.Code)
		if example.Code == 0 {
			code = "200"
		}

		resp, ok := responses.Get(code)
		if !ok {
			resp = &openapi.Response{
				Description: responseDescription(example, code),
				Content:     openapi.NewContentMap(),
			}
			responses.Set(code, resp)
		}
		if resp.Content == nil {
			resp.Content = openapi.NewContentMap()
		}

		for _, h := range example.Header {
			if h.Key == "" {
				continue
			}
			if resp.Headers == nil {
				resp.Headers = openapi.NewHeaderMap()
			}
			resp.Headers.Set(h.Key, &openapi.Header{
				Description: h.Description.String(),
				Schema:      &openapi.Schema{Type: openapi.TypeString},
			})
		}

		ct := responseContentType(example)
		schema := InferSchema(example.Body, example.PreviewLanguage)
		if !json.Valid([]byte(example.Body)) && example.Body != "" && strings.ToLower(example.PreviewLanguage) == "json" {
			logRecovery(e.opts.Logger, e.opts.Diagnostics, itemPath, DiagMalformedJSON, "example response body is not valid JSON, falling back to string")
		}

		mt, ok := resp.Content.Get(ct)
		if !ok {
			resp.Content.Set(ct, &openapi.MediaType{Schema: schema, Example: schema.Example})
			continue
		}
		if mt.Examples == nil {
			mt.Examples = openapi.NewExampleMap()
		}
		name := example.Name
		if name == "" {
			name = fmt.Sprintf("example%d", mt.Examples.Len()+2)
		}
		mt.Examples.Set(name, &openapi.Example{Value: schema.Example})
	}

	return responses
}

func responseDescription(r postman.Response, code string) string {
	if r.Name != "" {
		return r.Name
	}
	switch {
	case strings.HasPrefix(code, "2"):
		return "OK"
	case strings.HasPrefix(code, "3"):
		return "Redirect"
	case strings.HasPrefix(code, "4"):
		return "Client Error"
	case strings.HasPrefix(code, "5"):
		return "Server Error"
	default:
		return "Response"
	}
}

func responseContentType(r postman.Response) string {
	for _, h := range r.Header {
		if strings.EqualFold(h.Key, "content-type") {
			ct := h.Value
			if idx := strings.Index(ct, ";"); idx >= 0 {
				ct = ct[:idx]
			}
			return strings.TrimSpace(ct)
		}
	}
	switch strings.ToLower(r.PreviewLanguage) {
	case "json":
		return "application/json"
	case "xml":
		return "application/xml"
	case "html":
		return "text/html"
	case "javascript":
		return "application/javascript"
	default:
		return "text/plain"
	}
}

// resolveSecurity translates auth into a security requirement, registering
// the corresponding scheme in components.securitySchemes (spec.md §4.3.e).
// Returns nil when auth is nil, an explicit "noauth", or of an unrecognized
// type.
func (e *Engine) resolveSecurity(auth *postman.Auth, itemPath string) []openapi.SecurityRequirement {
	if auth == nil || auth.IsNoAuth() {
		return nil
	}
	if !auth.IsRecognized() {
		logRecovery(e.opts.Logger, e.opts.Diagnostics, itemPath, DiagUnknownAuthType, fmt.Sprintf("unrecognized auth type %q", auth.Type))
		return nil
	}

	scheme, baseName := buildSecurityScheme(auth)
	if scheme == nil {
		return nil
	}
	name := e.registerSecurityScheme(baseName, scheme)
	return []openapi.SecurityRequirement{{name: []string{}}}
}

// registerDeclaredAuth registers the security scheme for an auth
// declaration found while descending the item tree (collection- or
// folder-level), regardless of whether it ends up overridden before
// reaching any operation. Unlike resolveSecurity, it never logs a
// diagnostic: an overridden or unrecognized declaration isn't itself an
// anomaly, only the effective auth resolved per-operation is.
func (e *Engine) registerDeclaredAuth(auth *postman.Auth) {
	if auth == nil || auth.IsNoAuth() || !auth.IsRecognized() {
		return
	}
	scheme, baseName := buildSecurityScheme(auth)
	if scheme == nil {
		return
	}
	e.registerSecurityScheme(baseName, scheme)
}

func buildSecurityScheme(auth *postman.Auth) (*openapi.SecurityScheme, string) {
	switch auth.Type {
	case postman.AuthTypeBasic:
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeHTTP, Scheme: "basic"}, "basicAuth"
	case postman.AuthTypeBearer:
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeHTTP, Scheme: "bearer"}, "bearerAuth"
	case postman.AuthTypeAPIKey:
		in, _ := auth.Param("in")
		if in == "" {
			in = openapi.InHeader
		}
		key, _ := auth.Param("key")
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeAPIKey, In: in, Name: key}, "apiKeyAuth"
	case postman.AuthTypeOAuth2:
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeOAuth2, Flows: buildOAuthFlows(auth)}, "oauth2"
	default:
		return nil, ""
	}
}

func buildOAuthFlows(auth *postman.Auth) *openapi.OAuthFlows {
	grantType, _ := auth.Param("grantType")
	authURL, _ := auth.Param("authUrl")
	tokenURL, _ := auth.Param("accessTokenUrl")
	refreshURL, _ := auth.Param("refreshTokenUrl")
	scopes := parseScopes(mustParam(auth, "scope"))

	flows := &openapi.OAuthFlows{}
	switch strings.ToLower(grantType) {
	case "client_credentials":
		flows.ClientCredentials = &openapi.OAuthFlow{TokenURL: tokenURL, RefreshURL: refreshURL, Scopes: scopes}
	case "password_credentials", "password":
		flows.Password = &openapi.OAuthFlow{TokenURL: tokenURL, RefreshURL: refreshURL, Scopes: scopes}
	case "implicit":
		flows.Implicit = &openapi.OAuthFlow{AuthorizationURL: authURL, RefreshURL: refreshURL, Scopes: scopes}
	default:
		// "authorization_code", unspecified, or unrecognized: populate the
		// authorization code flow when there's at least a URL to describe it.
		if authURL != "" || tokenURL != "" {
			flows.AuthorizationCode = &openapi.OAuthFlow{AuthorizationURL: authURL, TokenURL: tokenURL, RefreshURL: refreshURL, Scopes: scopes}
		}
	}
	return flows
}

func mustParam(auth *postman.Auth, key string) string {
	v, _ := auth.Param(key)
	return v
}

func parseScopes(scope string) map[string]string {
	scopes := map[string]string{}
	for _, tok := range strings.Fields(scope) {
		scopes[tok] = ""
	}
	return scopes
}

// registerSecurityScheme deduplicates by structural equality: an identical
// scheme reuses its existing name; otherwise baseName is suffixed "_2",
// "_3", … until unique (spec.md §4.3.e).
func (e *Engine) registerSecurityScheme(baseName string, scheme *openapi.SecurityScheme) string {
	if e.components.SecuritySchemes == nil {
		e.components.SecuritySchemes = openapi.NewSecuritySchemeMap()
	}
	schemes := e.components.SecuritySchemes
	for _, name := range schemes.Keys() {
		existing, _ := schemes.Get(name)
		if existing.Equal(scheme) {
			return name
		}
	}

	name := baseName
	if schemes.Has(name) {
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s_%d", baseName, n)
			if !schemes.Has(candidate) {
				name = candidate
				break
			}
		}
	}
	schemes.Set(name, scheme)
	return name
}
