// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/gen"
	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// Configuration keys. Flags use the same names.
const (
	keySizes      = "sizes"
	keySeed       = "seed"
	keyMin        = "min"
	keyMax        = "max"
	keyThreads    = "threads"
	keySchedule   = "schedule"
	keyGrain      = "grain"
	keyReduction  = "reduction"
	keyResolution = "resolution"
	keyAlgorithms = "algorithms"
	keyVerify     = "verify"
	keyFormat     = "format"
	keyLogLevel   = "log-level"
)

// envPrefix is prepended to every environment variable, e.g. SORTBENCH_SEED.
const envPrefix = "SORTBENCH"

// addBenchFlags registers the benchmark flags with defaults from
// bench.DefaultConfig.
func addBenchFlags(fs *pflag.FlagSet) {
	def := bench.DefaultConfig()
	fs.IntSlice(keySizes, def.Sizes, "Comma-separated input sizes")
	fs.Uint64(keySeed, def.Seed, "Generator seed")
	fs.Int(keyMin, def.Range.Lo, "Smallest generated value")
	fs.Int(keyMax, def.Range.Hi, "Largest generated value")
	fs.Int(keyThreads, def.MaxThreads, "Worker pool size (<= 0 uses GOMAXPROCS)")
	fs.String(keySchedule, def.Schedule.String(), "Loop schedule: static or dynamic")
	fs.Int(keyGrain, def.Grain, "Smallest parallel region worth forking, in items")
	fs.String(keyReduction, def.Reduction.String(), "Selection sort reduction: merge or mutex")
	fs.Duration(keyResolution, def.Resolution, "Unit durations are truncated to")
	fs.StringSlice(keyAlgorithms, nil, "Algorithms to run: bubble, selection, insertion (default all)")
	fs.Bool(keyVerify, def.Verify, "Fail if a sort leaves its input unordered")
	fs.String(keyFormat, bench.FormatText, "Report format: "+strings.Join(bench.Formats(), ", "))
}

// newViper returns a viper instance reading SORTBENCH_* variables and the
// flags in fs.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// readConfig loads .env and the config file into v. Without an explicit
// cfgFile, a missing ./sortbench.yaml is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sortbench")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// listValues flattens a list setting. Items may themselves be comma
// separated, as they are when the value comes from an environment variable.
func listValues(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// benchConfig builds a bench.Config from v.
func benchConfig(v *viper.Viper) (bench.Config, error) {
	cfg := bench.DefaultConfig()

	cfg.Sizes = nil
	for _, s := range listValues(v, keySizes) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", keySizes, err)
		}
		cfg.Sizes = append(cfg.Sizes, n)
	}

	cfg.Seed = v.GetUint64(keySeed)
	cfg.Range = gen.Range{Lo: v.GetInt(keyMin), Hi: v.GetInt(keyMax)}
	cfg.MaxThreads = v.GetInt(keyThreads)
	cfg.Grain = v.GetInt(keyGrain)
	cfg.Resolution = v.GetDuration(keyResolution)
	cfg.Verify = v.GetBool(keyVerify)

	var err error
	if cfg.Schedule, err = workerpool.ParseSchedule(v.GetString(keySchedule)); err != nil {
		return cfg, err
	}
	if cfg.Reduction, err = sorts.ParseReduction(v.GetString(keyReduction)); err != nil {
		return cfg, err
	}
	for _, name := range listValues(v, keyAlgorithms) {
		a, err := sorts.ParseAlgorithm(name)
		if err != nil {
			return cfg, err
		}
		cfg.Algorithms = append(cfg.Algorithms, a)
	}
	return cfg, cfg.Validate()
}
