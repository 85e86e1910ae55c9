// Package hostcfg loads the optional host-level configuration file. The
// file is HCL: a host block for process-wide settings and one page block
// per page to render. Attribute values are evaluated against an environment
// context, so paths can interpolate env.* variables.
package hostcfg

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded host configuration.
type File struct {
	Host  *Host  `hcl:"host,block"`
	Pages []Page `hcl:"page,block"`
}

// Host carries process-wide settings. CLI flags take precedence over every
// field here.
type Host struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	OutputDir string `hcl:"output_dir,optional"`
}

// Page names one page to render.
type Page struct {
	Name   string `hcl:"name,label"`
	Input  string `hcl:"input"`
	Output string `hcl:"output,optional"`
}

// Load reads and decodes the configuration file at path.
func Load(ctx context.Context, path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse host config %s: %w", path, diags)
	}
	return decode(ctx, hclFile)
}

// LoadString decodes in-memory configuration source. Primarily for tests.
func LoadString(ctx context.Context, src string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL([]byte(src), "host.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse host config: %w", diags)
	}
	return decode(ctx, hclFile)
}

func decode(ctx context.Context, hclFile *hcl.File) (*File, error) {
	var out File
	if diags := gohcl.DecodeBody(hclFile.Body, evalContext(), &out); diags.HasErrors() {
		return nil, fmt.Errorf("invalid host config: %w", diags)
	}

	seen := make(map[string]bool, len(out.Pages))
	for _, p := range out.Pages {
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate page block %q in host config", p.Name)
		}
		seen[p.Name] = true
	}

	ctxlog.FromContext(ctx).Debug("Host config loaded.", "pages", len(out.Pages))
	return &out, nil
}

// evalContext exposes the process environment as the env object, so config
// values can reference env.HOME and friends.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
