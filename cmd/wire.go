package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	ledgerfile "github.com/semkit/ktest/internal/adapters/ledger/file"
	"github.com/semkit/ktest/internal/adapters/proc"
	"github.com/semkit/ktest/internal/application"
	"github.com/semkit/ktest/internal/domain"
	"github.com/semkit/ktest/internal/logging"
	"github.com/semkit/ktest/internal/ports"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = ".ktest"
)

type app struct {
	executor    *application.Executor
	profiler    *application.Profiler
	ledger      *ledgerfile.Store
	tools       application.ToolConfig
	samplerSeed *int64
	logger      *zap.Logger
	clock       ports.Clock
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(envOrDefault("KTEST_CONFIG_DIR", filepath.Join(homeDir, configDirName)))

	cfg.SetDefault("tools.interpreter", "ksem-interpreter")
	cfg.SetDefault("tools.prover", "ksem-prover")
	cfg.SetDefault("run.mode", "NORMAL")
	cfg.SetDefault("run.schedule", "DEFAULT")
	cfg.SetDefault("prove.module", "VERIFICATION")
	cfg.SetDefault("ledger.dir", ".ktest")
	cfg.SetDefault("log.level", "warn")

	cfg.SetEnvPrefix("KTEST")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	logger, err := logging.New(cfg.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	tools := application.ToolConfig{
		Interpreter: cfg.GetString("tools.interpreter"),
		Prover:      cfg.GetString("tools.prover"),
		Mode:        cfg.GetString("run.mode"),
		Schedule:    cfg.GetString("run.schedule"),
		ProofModule: cfg.GetString("prove.module"),
	}

	store := ledgerfile.NewStore(cfg.GetString("ledger.dir"))
	executor := application.NewExecutor(proc.NewRunner(), tools, logger)
	clock := ports.SystemClock{}

	var samplerSeed *int64
	if cfg.IsSet("sampler.seed") {
		seed := cfg.GetInt64("sampler.seed")
		samplerSeed = &seed
	}

	return &app{
		executor:    executor,
		profiler:    application.NewProfiler(executor, store, clock),
		ledger:      store,
		tools:       tools,
		samplerSeed: samplerSeed,
		logger:      logger,
		clock:       clock,
	}, nil
}

// deliver forwards a strategy's captured output to the command writers and
// translates a non-zero child status into an ExitError so the harness process
// exits with the same code.
func (a *app) deliver(cmd *cobra.Command, result domain.ExecutionResult, err error) error {
	if err != nil {
		return err
	}

	if len(result.Stdout) > 0 {
		if _, err := cmd.OutOrStdout().Write(result.Stdout); err != nil {
			return fmt.Errorf("write tool stdout: %w", err)
		}
	}
	if len(result.Stderr) > 0 {
		if _, err := cmd.ErrOrStderr().Write(result.Stderr); err != nil {
			return fmt.Errorf("write tool stderr: %w", err)
		}
	}

	if result.ExitStatus != 0 {
		return &domain.ExitError{Code: result.ExitStatus}
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
