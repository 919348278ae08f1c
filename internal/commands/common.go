package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/steuerlink/steuerlink/internal/config"
	"github.com/steuerlink/steuerlink/internal/logging"
	"github.com/steuerlink/steuerlink/internal/model"
	"github.com/steuerlink/steuerlink/internal/rates"
)

// declarationFile is the on-disk shape of a declaration handed over by the
// API layer: the tax return plus the user identity record.
type declarationFile struct {
	Year int                 `json:"year"`
	User model.User          `json:"user"`
	Data model.TaxReturnData `json:"data"`
}

// env bundles what every command needs: config, logger, and rate cache.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	cache  *rates.Cache
}

func loadEnv(configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Rates.CSVPath == "" {
		return nil, rates.ErrNotLoaded
	}
	cache, err := rates.Load(cfg.Rates.CSVPath, logger)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, cache: cache}, nil
}

func readDeclaration(path string) (model.TaxReturn, model.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TaxReturn{}, model.User{}, fmt.Errorf("reading declaration: %w", err)
	}

	var decl declarationFile
	if err := json.Unmarshal(data, &decl); err != nil {
		return model.TaxReturn{}, model.User{}, fmt.Errorf("parsing declaration %s: %w", path, err)
	}

	return model.TaxReturn{Year: decl.Year, Data: decl.Data}, decl.User, nil
}

// warnUnfinished logs the sections left in progress so incomplete
// declarations are visible before their zero-value defaults flow into the
// computation.
func warnUnfinished(logger *zap.Logger, tr model.TaxReturn) {
	if unfinished := tr.Data.UnfinishedSections(); len(unfinished) > 0 {
		logger.Warn("declaration has unfinished sections",
			zap.Strings("sections", unfinished))
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
