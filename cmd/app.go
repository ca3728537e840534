package cmd

import (
	"github.com/killallgit/chatlist/pkg/config"
	"github.com/killallgit/chatlist/pkg/layoutopts"
	"github.com/killallgit/chatlist/pkg/listlayout"
	"github.com/killallgit/chatlist/pkg/preview"
)

// resolverConfig maps the grouping settings onto the resolver. A configured
// interval of zero is kept: only messages sent at the same instant group.
func resolverConfig(cfg *config.Config) layoutopts.Config {
	resolver := layoutopts.DefaultConfig()
	if cfg.Grouping.MaxInterval > 0 || cfg.Grouping.MaxIntervalStr != "" {
		resolver.MaxTimeIntervalBetweenMessagesInGroup = cfg.Grouping.MaxInterval
	}
	if cfg.Grouping.SupportedReactions != nil {
		resolver.SupportedReactions = cfg.Grouping.SupportedReactions
	}
	resolver.JumbomojiLimit = cfg.Grouping.JumbomojiLimit
	return resolver
}

func layoutConfig(cfg *config.Config) listlayout.Config {
	layout := listlayout.DefaultConfig()
	if cfg.Layout.EstimatedItemHeight > 0 {
		layout.EstimatedItemHeight = cfg.Layout.EstimatedItemHeight
	}
	if cfg.Layout.Spacing >= 0 {
		layout.Spacing = cfg.Layout.Spacing
	}
	return layout
}

func previewConfig(cfg *config.Config) preview.Config {
	p := preview.DefaultConfig()
	if cfg.Preview.Width > 0 {
		p.Width = cfg.Preview.Width
	}
	if cfg.Preview.Height > 0 {
		p.Height = cfg.Preview.Height
	}
	if cfg.Preview.EstimatedItemHeight > 0 {
		p.EstimatedItemHeight = cfg.Preview.EstimatedItemHeight
	}
	if cfg.Preview.Spacing >= 0 {
		p.Spacing = cfg.Preview.Spacing
	}
	if cfg.Preview.TemplateCacheSize > 0 {
		p.TemplateCacheSize = cfg.Preview.TemplateCacheSize
	}
	return p
}
