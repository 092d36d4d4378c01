package sources

import (
	"fmt"

	"github.com/jonathan/job-aggregator/internal/config"
	"github.com/jonathan/job-aggregator/internal/fetch"
)

// FromConfig builds the adapter for one configured source.
func FromConfig(cfg config.SourceConfig, client *fetch.Client) (Source, error) {
	switch cfg.Type {
	case config.TypeHackerNews:
		if cfg.URL == "" {
			return nil, fmt.Errorf("source %q: hackernews requires a thread url", cfg.Name)
		}
		return NewHackerNews(client, cfg.URL), nil
	case config.TypeYC:
		return NewYCombinator(client, cfg.URL), nil
	case config.TypeWellfound:
		return NewWellfound(client, cfg.URL), nil
	case config.TypeRemoteOK:
		return NewRemoteOK(client, cfg.URL), nil
	case config.TypeWeWorkRemotely:
		return NewWeWorkRemotely(client, cfg.URL), nil
	default:
		return nil, fmt.Errorf("source %q: unknown type %q", cfg.Name, cfg.Type)
	}
}
