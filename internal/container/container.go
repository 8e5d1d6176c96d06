// Package container provides dependency injection for the ccs-extract
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/ccs-extract/internal/categorizer"
	"fjacquet/ccs-extract/internal/common"
	"fjacquet/ccs-extract/internal/config"
	"fjacquet/ccs-extract/internal/logging"
	"fjacquet/ccs-extract/internal/statement"
	"fjacquet/ccs-extract/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them. It acts as the central registry for dependency injection,
// ensuring that all components receive their required dependencies through
// constructors.
//
// Container is immutable after creation - all fields are private and can
// only be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	patterns  store.LoadResult
	engine    *categorizer.RuleEngine
	resolver  *categorizer.Resolver
	processor *statement.Processor
}

// NewContainer creates and wires all application dependencies. This is the
// main entry point for dependency injection in the application.
//
// Pattern and category configuration problems fall back to the built-in
// defaults; a rules file that exists but cannot be used is the one hard
// failure and aborts construction.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return build(cfg, logger, statement.NewPdftotextExtractor(logger))
}

// NewContainerWithExtractor wires the dependency graph around a
// caller-supplied text extractor and logger. Tests use it to run the full
// pipeline without the pdftotext binary.
func NewContainerWithExtractor(cfg *config.Config, logger logging.Logger, extractor statement.TextExtractor) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return build(cfg, logger, extractor)
}

func build(cfg *config.Config, logger logging.Logger, extractor statement.TextExtractor) (*Container, error) {
	if cfg.CSV.Delimiter != "" {
		common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
	}
	common.SetLogger(logger)

	patterns := store.NewPatternStore(cfg.Files.Patterns, logger).Load()

	normalizer := categorizer.NewMerchantNormalizer(patterns.MerchantPatterns, logger)
	keywords := categorizer.NewKeywordCategorizer(patterns.Categories, logger)

	engine := categorizer.NewRuleEngine(logger)
	if err := loadRules(engine, cfg.Files.Rules); err != nil {
		return nil, err
	}

	resolver := categorizer.NewResolver(engine, normalizer, keywords, logger)
	parser := statement.NewParser(logger)
	processor := statement.NewProcessor(extractor, parser, resolver, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldSource, Value: patterns.Source.String()},
		logging.Field{Key: "rules", Value: len(engine.Rules())})

	return &Container{
		logger:    logger,
		config:    cfg,
		patterns:  patterns,
		engine:    engine,
		resolver:  resolver,
		processor: processor,
	}, nil
}

// loadRules resolves the rules file through the standard config locations
// and loads it into the engine. A file that exists nowhere leaves the
// engine empty; LoadRules logs the warning for that case.
func loadRules(engine *categorizer.RuleEngine, rulesFile string) error {
	filename := rulesFile
	if filename == "" {
		filename = categorizer.DefaultRulesFile
	}

	path, err := store.FindConfigFile(filename)
	if err != nil {
		path = filename
	}
	return engine.LoadRules(path)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetPatterns returns the merged merchant pattern and category tables the
// container was built with.
func (c *Container) GetPatterns() store.LoadResult {
	return c.patterns
}

// GetRuleEngine returns the conditional rule engine.
func (c *Container) GetRuleEngine() *categorizer.RuleEngine {
	return c.engine
}

// GetResolver returns the category resolver.
func (c *Container) GetResolver() *categorizer.Resolver {
	return c.resolver
}

// GetProcessor returns the statement processor.
func (c *Container) GetProcessor() *statement.Processor {
	return c.processor
}

// Close performs cleanup of container resources. Currently no resources
// need explicit cleanup; this method is provided for future extensibility.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
