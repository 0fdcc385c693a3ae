// Package config loads the stress-test configuration file and builds the
// process logger.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/calebmor/gauntlet/internal/model"
)

// Configuration keys under the stress_test_config object.
const (
	keyEnabled         = "stress_test_config.enabled"
	keyDuration        = "stress_test_config.duration_seconds"
	keyConcurrency     = "stress_test_config.concurrent_operations"
	keyScenarios       = "stress_test_config.test_scenarios"
	keyGrace           = "stress_test_config.grace_seconds"
	keyMonitorInterval = "stress_test_config.monitor_interval_seconds"
	keyDBPath          = "stress_test_config.db_path"
	keyReportDir       = "stress_test_config.report_dir"
)

const envPrefix = "GAUNTLET"

// Load reads the JSON configuration file at path and resolves it into an
// immutable Config, applying defaults and GAUNTLET_* environment
// overrides. A missing file is not an error; defaults apply, matching the
// original performance profile with every scenario enabled.
func Load(path string) (model.Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	v.SetDefault(keyEnabled, true)
	v.SetDefault(keyDuration, model.DefaultDurationSeconds)
	v.SetDefault(keyConcurrency, model.DefaultConcurrentOperations)
	v.SetDefault(keyGrace, model.DefaultGraceSeconds)
	v.SetDefault(keyMonitorInterval, model.DefaultMonitorIntervalSeconds)
	v.SetDefault(keyDBPath, model.DefaultDBPath)
	v.SetDefault(keyReportDir, model.DefaultReportDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return model.Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	scenarios := make(map[model.Category]bool, len(model.WorkloadCategories))
	for _, cat := range model.WorkloadCategories {
		key := keyScenarios + "." + string(cat)
		if v.IsSet(key) {
			scenarios[cat] = v.GetBool(key)
		} else {
			scenarios[cat] = true
		}
	}

	cfg := model.Config{
		Enabled:                v.GetBool(keyEnabled),
		DurationSeconds:        v.GetInt(keyDuration),
		ConcurrentOperations:   v.GetInt(keyConcurrency),
		Scenarios:              scenarios,
		GraceSeconds:           v.GetInt(keyGrace),
		MonitorIntervalSeconds: v.GetInt(keyMonitorInterval),
		DBPath:                 v.GetString(keyDBPath),
		ReportDir:              v.GetString(keyReportDir),
	}

	if err := cfg.Validate(); err != nil {
		return model.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
