package commons

import "time"

const (
	CurrencyCodeLength    = 3
	DefaultAllowedRPS     = 10
	DefaultCatalogRefresh = "@daily"
	VisitorCookieName     = "cc_visitor"
	VisitorCookieMaxAge   = 365 * 24 * time.Hour
	ServerIdleTimeout     = time.Minute
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerShutdownTimeout = 10 * time.Second
	LoggerShutdownTimeout = 5 * time.Second
	WidgetStartTimeout    = 15 * time.Second
)
