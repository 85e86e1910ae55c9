// Package pycfg parses the inline <py-config> blocks of a page. The block
// body is TOML; multiple blocks merge in document order. The host only
// records the declared configuration -- package fetching is out of scope.
package pycfg

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/page"
	"golang.org/x/net/html"
)

// ConfigTag is the element name of an inline config block.
const ConfigTag = "py-config"

// Config is the merged inline configuration of one page.
type Config struct {
	// Packages lists interpreter packages the page declares. Recorded,
	// not fetched.
	Packages []string `toml:"packages"`
	// Plugins lists host plugins the page declares.
	Plugins []string `toml:"plugins"`
}

// Parse collects and merges every <py-config> block of the page. Invalid
// TOML in any block is a page load error.
func Parse(ctx context.Context, p *page.Page) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	merged := &Config{}

	for i, n := range p.Elements(ConfigTag) {
		var c Config
		if err := toml.Unmarshal([]byte(rawText(n)), &c); err != nil {
			return nil, fmt.Errorf("invalid py-config block %d: %w", i, err)
		}
		merged.Packages = append(merged.Packages, c.Packages...)
		merged.Plugins = append(merged.Plugins, c.Plugins...)
	}

	if len(merged.Packages) > 0 || len(merged.Plugins) > 0 {
		logger.Debug("Inline page config parsed.",
			"packages", merged.Packages, "plugins", merged.Plugins)
	}
	return merged, nil
}

func rawText(n *html.Node) string {
	var out string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out += c.Data
		}
	}
	return out
}
