package config

import (
	"fmt"

	"wikilabels/internal/models"
)

func (c *Config) Validate() error {
	if c.Wikipedia.BaseURL == "" && c.Wikipedia.Language == "" {
		return fmt.Errorf("%w: wikipedia.base_url or wikipedia.language is required", models.ErrConfiguration)
	}
	if c.Wikipedia.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: wikipedia.timeout_seconds must be positive", models.ErrConfiguration)
	}
	if c.Wikipedia.SearchLimit <= 0 {
		return fmt.Errorf("%w: wikipedia.search_limit must be positive", models.ErrConfiguration)
	}
	if c.Wikipedia.RetryMaxAttempts < 0 {
		return fmt.Errorf("%w: wikipedia.retry_max_attempts must not be negative", models.ErrConfiguration)
	}
	if c.Wikipedia.CacheTTLSeconds < 0 {
		return fmt.Errorf("%w: wikipedia.cache_ttl_seconds must not be negative", models.ErrConfiguration)
	}

	if c.Suggest.BootstrapSize <= 0 {
		return fmt.Errorf("%w: suggest.bootstrap_size must be positive", models.ErrConfiguration)
	}
	if c.Suggest.TopN < 0 {
		return fmt.Errorf("%w: suggest.topn must not be negative (0 means all)", models.ErrConfiguration)
	}
	if c.Suggest.MaxConcurrency <= 0 {
		return fmt.Errorf("%w: suggest.max_concurrency must be positive", models.ErrConfiguration)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("%w: server.port is required", models.ErrConfiguration)
	}
	return nil
}
