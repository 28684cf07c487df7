package constants

const (
	HeaderTenantID       = "X-Tenant-ID"
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"

	CtxKeyTenantID = "tenant_id"

	ViperServerAddr    = "server.addr"
	ViperDatabaseDSN   = "database.dsn"
	ViperSecretKey     = "auth.secret"
	ViperTaxonomyPath  = "taxonomy.path"
	ViperTaxonomySheet = "taxonomy.sheet"
	ViperCORSOrigin    = "server.cors_origin"
)

// DefaultTaxonomySheet is the workbook sheet the master question bank lives
// on in the official export.
const DefaultTaxonomySheet = "MASTER_232"
