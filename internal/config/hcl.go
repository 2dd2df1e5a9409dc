package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// hclFile mirrors Config for HCL decoding. Every field is optional so a file
// only overrides what it sets.
type hclFile struct {
	Version *string     `hcl:"version,optional"`
	Output  *hclOutput  `hcl:"output,block"`
	Server  *hclServer  `hcl:"server,block"`
	Logging *hclLogging `hcl:"logging,block"`
}

type hclOutput struct {
	DefaultFormat *string `hcl:"default_format,optional"`
	DefaultDomain *string `hcl:"default_domain,optional"`
	NoColor       *bool   `hcl:"no_color,optional"`
	ShowTable     *bool   `hcl:"show_table,optional"`
}

type hclServer struct {
	Addr              *string `hcl:"addr,optional"`
	ReadTimeout       *string `hcl:"read_timeout,optional"`
	ReadHeaderTimeout *string `hcl:"read_header_timeout,optional"`
	WriteTimeout      *string `hcl:"write_timeout,optional"`
	IdleTimeout       *string `hcl:"idle_timeout,optional"`
	ShutdownTimeout   *string `hcl:"shutdown_timeout,optional"`
	MetricsPath       *string `hcl:"metrics_path,optional"`
}

type hclLogging struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

// decodeHCL decodes an HCL file on top of cfg
func decodeHCL(path string, cfg *Config) error {
	var file hclFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return err
	}

	setString(&cfg.Version, file.Version)

	if o := file.Output; o != nil {
		setString(&cfg.Output.DefaultFormat, o.DefaultFormat)
		setString(&cfg.Output.DefaultDomain, o.DefaultDomain)
		setBool(&cfg.Output.NoColor, o.NoColor)
		setBool(&cfg.Output.ShowTable, o.ShowTable)
	}

	if s := file.Server; s != nil {
		setString(&cfg.Server.Addr, s.Addr)
		setString(&cfg.Server.MetricsPath, s.MetricsPath)
		durations := []struct {
			name   string
			target *time.Duration
			value  *string
		}{
			{"read_timeout", &cfg.Server.ReadTimeout, s.ReadTimeout},
			{"read_header_timeout", &cfg.Server.ReadHeaderTimeout, s.ReadHeaderTimeout},
			{"write_timeout", &cfg.Server.WriteTimeout, s.WriteTimeout},
			{"idle_timeout", &cfg.Server.IdleTimeout, s.IdleTimeout},
			{"shutdown_timeout", &cfg.Server.ShutdownTimeout, s.ShutdownTimeout},
		}
		for _, d := range durations {
			if d.value == nil {
				continue
			}
			parsed, err := time.ParseDuration(*d.value)
			if err != nil {
				return fmt.Errorf("server.%s: %w", d.name, err)
			}
			*d.target = parsed
		}
	}

	if l := file.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.Format, l.Format)
		setString(&cfg.Logging.Output, l.Output)
		setBool(&cfg.Logging.Development, l.Development)
	}

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
