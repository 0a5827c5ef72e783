// Package ops loads the pipeline's JSON run configuration: input feed
// paths, output sink paths, sector definitions for bucketed risk, and
// profiling options: a FileConfig read via encoding/json, resolved into
// a Loaded struct with defaults applied for every unset path.
package ops

import (
	"encoding/json"
	"os"

	"treasury-pipeline/internal/errors"
	"treasury-pipeline/internal/risk"
)

// FileConfig mirrors the on-disk JSON layout. Every field is optional;
// omitted fields resolve to the spec's default filenames.
type FileConfig struct {
	Input     InputConfig    `json:"input"`
	Output    OutputConfig   `json:"output"`
	Sectors   []SectorConfig `json:"sectors"`
	Profiling ProfilingConfig `json:"profiling"`
}

// InputConfig names the four external feed files.
type InputConfig struct {
	Prices     string `json:"prices"`
	MarketData string `json:"marketData"`
	Trades     string `json:"trades"`
	Inquiries  string `json:"inquiries"`
}

// OutputConfig names the six historical/GUI sink files.
type OutputConfig struct {
	GUI                 string `json:"gui"`
	Positions           string `json:"positions"`
	Risk                string `json:"risk"`
	Streaming           string `json:"streaming"`
	Executions          string `json:"executions"`
	AggregatedInquiries string `json:"aggregatedInquiries"`
}

// SectorConfig names a bucketed-risk sector and its member products.
type SectorConfig struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// ProfilingConfig holds the profiling options read from the config file.
// cmd/pipeline does not read it: the pyroscope profiler is started only by
// the -profile and -profile-server command-line flags.
type ProfilingConfig struct {
	Enabled       bool   `json:"enabled"`
	ServerAddress string `json:"serverAddress"`
}

// Loaded is the resolved configuration, defaults applied.
type Loaded struct {
	Input     InputConfig
	Output    OutputConfig
	Sectors   []risk.Sector
	Profiling ProfilingConfig
}

func defaultInput() InputConfig {
	return InputConfig{
		Prices:     "prices.txt",
		MarketData: "marketdata.txt",
		Trades:     "trades.txt",
		Inquiries:  "inquiries.txt",
	}
}

func defaultOutput() OutputConfig {
	return OutputConfig{
		GUI:                 "gui.txt",
		Positions:           "positions.txt",
		Risk:                "risk.txt",
		Streaming:           "streaming.txt",
		Executions:          "executions.txt",
		AggregatedInquiries: "aggregatedinquiries.txt",
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Load reads a JSON config file at path and resolves it against the
// spec's default file layout. A missing path is not an error: Load
// falls back to an all-defaults configuration.
func Load(path string) (Loaded, error) {
	var cfg FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return resolve(cfg), nil
			}
			return Loaded{}, errors.Wrap(err, "ops: read config")
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Loaded{}, errors.Wrap(err, "ops: parse config")
		}
	}
	return resolve(cfg), nil
}

func resolve(cfg FileConfig) Loaded {
	def := defaultInput()
	in := InputConfig{
		Prices:     firstNonEmpty(cfg.Input.Prices, def.Prices),
		MarketData: firstNonEmpty(cfg.Input.MarketData, def.MarketData),
		Trades:     firstNonEmpty(cfg.Input.Trades, def.Trades),
		Inquiries:  firstNonEmpty(cfg.Input.Inquiries, def.Inquiries),
	}

	defOut := defaultOutput()
	out := OutputConfig{
		GUI:                 firstNonEmpty(cfg.Output.GUI, defOut.GUI),
		Positions:           firstNonEmpty(cfg.Output.Positions, defOut.Positions),
		Risk:                firstNonEmpty(cfg.Output.Risk, defOut.Risk),
		Streaming:           firstNonEmpty(cfg.Output.Streaming, defOut.Streaming),
		Executions:          firstNonEmpty(cfg.Output.Executions, defOut.Executions),
		AggregatedInquiries: firstNonEmpty(cfg.Output.AggregatedInquiries, defOut.AggregatedInquiries),
	}

	sectors := make([]risk.Sector, 0, len(cfg.Sectors))
	for _, s := range cfg.Sectors {
		sectors = append(sectors, risk.Sector{Name: s.Name, Products: s.Products})
	}

	return Loaded{Input: in, Output: out, Sectors: sectors, Profiling: cfg.Profiling}
}
