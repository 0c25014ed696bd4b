package constants

// viper keys
const (
	ViperServerAddr        = "server.addr"
	ViperPostgresDSN       = "postgres.dsn"
	ViperLoggerLevel       = "logger.level"
	ViperEffectiveDate     = "rating.effective_date"
	ViperExpectedLossRatio = "rating.expected_loss_ratio"
	ViperRefCacheTTL       = "refcache.ttl"
	ViperSecretKey         = "admin.secret"
	ViperOpenAIKey         = "openai.api_key"
	ViperOpenAIModel       = "openai.model"
)

const (
	CookieKeySecretToken = "secret_token"
)
