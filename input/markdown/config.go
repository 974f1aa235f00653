package markdown

import (
	"strings"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/schuko"
)

// Configuration keys understood by OptionsFromConfig and
// RenderOptionsFromConfig.
const (
	ConfFence      = "markdown.fence"      // "flush" | "drop"
	ConfNormalize  = "markdown.normalize"  // "nfc" | "none"
	ConfListMarker = "markdown.listmarker" // "-" | "*"
)

// OptionsFromConfig derives parser options from a configuration.
// Unset keys keep the defaults; invalid values are reported with code
// core.EINVALID.
func OptionsFromConfig(conf schuko.Configuration) ([]Option, error) {
	if conf == nil {
		return nil, nil
	}
	var opts []Option
	switch v := strings.ToLower(conf.GetString(ConfFence)); v {
	case "":
	case "flush":
		opts = append(opts, WithFencePolicy(FlushUnterminated))
	case "drop":
		opts = append(opts, WithFencePolicy(DropUnterminated))
	default:
		return nil, core.Error(core.EINVALID, "%s: unknown fence policy %q", ConfFence, v)
	}
	switch v := strings.ToLower(conf.GetString(ConfNormalize)); v {
	case "", "none":
	case "nfc":
		opts = append(opts, WithNormalization(true))
	default:
		return nil, core.Error(core.EINVALID, "%s: unsupported normalization %q", ConfNormalize, v)
	}
	tracer().Debugf("%d parser options from configuration", len(opts))
	return opts, nil
}

// RenderOptionsFromConfig derives renderer options from a configuration.
func RenderOptionsFromConfig(conf schuko.Configuration) ([]RenderOption, error) {
	if conf == nil {
		return nil, nil
	}
	m := conf.GetString(ConfListMarker)
	if m == "" {
		return nil, nil
	}
	if len(m) != 1 || !isMarker(m[0]) {
		return nil, core.Error(core.EINVALID, "%s: list marker must be '-' or '*', is %q", ConfListMarker, m)
	}
	return []RenderOption{WithListMarker(m[0])}, nil
}
