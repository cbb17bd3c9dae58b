package config

import (
	"os"
	"strings"
)

// Env collects every environment-backed setting in one place so that
// nothing else in the codebase reads os.Getenv directly. All keys are
// optional; missing values fall back to the documented defaults, except
// the webhook URL and token, which stay empty and make the dispatcher
// and the inbound trigger no-op / reject accordingly.
type Env struct {
	// GraphQLURL is the WordPress GraphQL endpoint.
	GraphQLURL string

	// CategorySlug scopes every content query to one category.
	CategorySlug string

	// SiteURL is the public base URL used to build article links.
	SiteURL string

	// WebhookURL is the Make.com webhook destination. Empty disables
	// outbound notifications.
	WebhookURL string

	// WebhookToken is the shared secret expected on the inbound
	// publish trigger. Empty disables the check.
	WebhookToken string

	// Development reports whether the app runs outside production.
	Development bool

	// EnableWebhooksInDev overrides the development suppression of
	// outbound notifications.
	EnableWebhooksInDev bool

	// Port is the HTTP listen port.
	Port string
}

// GetEnv reads the process environment. InitApp must have been called
// first so that .env values are visible.
func GetEnv() Env {
	return Env{
		GraphQLURL:          getenvDefault("WP_GRAPHQL_URL", "https://redaccion.centraldenoticiasgt.com/graphql"),
		CategorySlug:        getenvDefault("CATEGORY_SLUG", "tvgtusa"),
		SiteURL:             getenvDefault("SITE_URL", "https://tvgtusa.com"),
		WebhookURL:          os.Getenv("MAKE_WEBHOOK_URL"),
		WebhookToken:        os.Getenv("WP_WEBHOOK_TOKEN"),
		Development:         strings.ToLower(getenvDefault("APP_ENV", "production")) != "production",
		EnableWebhooksInDev: os.Getenv("ENABLE_WEBHOOKS_IN_DEV") != "",
		Port:                getenvDefault("PORT", "8080"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
