package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lpernett/godotenv"
	"go.uber.org/zap"

	"github.com/adaptivering/ringmind/internal/config"
	"github.com/adaptivering/ringmind/internal/engine"
	"github.com/adaptivering/ringmind/internal/provider"
	"github.com/adaptivering/ringmind/internal/ring"
	"github.com/adaptivering/ringmind/internal/version"
)

const (
	modeSuggest     = "suggest"
	modeOrchestrate = "orchestrate"
	modeAnalyze     = "analyze-workflows"
)

type cliArgs struct {
	mode         string
	app          string
	mcpServers   string
	tools        string
	prompt       string
	interactions string
}

func main() {
	var (
		args        cliArgs
		configPath  = flag.String("config", "", "path to config file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.StringVar(&args.mode, "mode", modeSuggest, "operation mode: suggest, orchestrate or analyze-workflows")
	flag.StringVar(&args.app, "app", "", "application name")
	flag.StringVar(&args.mcpServers, "mcp-servers", "[]", "JSON list of available MCP servers")
	flag.StringVar(&args.tools, "tools", "", "JSON list of available tools")
	flag.StringVar(&args.prompt, "prompt", "", "user prompt for orchestration")
	flag.StringVar(&args.interactions, "interactions", "", "JSON list of UI interactions")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		os.Exit(0)
	}

	// Diagnostics go to stderr; stdout carries exactly one JSON value.
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err == nil {
		zap.L().Debug("loaded environment from .env")
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			zap.L().Error("loading config", zap.Error(err))
			os.Exit(1)
		}
	}

	os.Exit(run(cfg, args, os.Stdout))
}

func run(cfg *config.Config, args cliArgs, out io.Writer) int {
	switch args.mode {
	case modeSuggest, modeOrchestrate, modeAnalyze:
	default:
		zap.L().Error("unknown mode", zap.String("mode", args.mode))
		return 2
	}

	apiKey := cfg.Provider.ResolvedAPIKey()
	if apiKey == "" {
		zap.L().Warn("API credential not set, using deterministic fallbacks")
		return runWithoutCredential(args, out)
	}

	p, err := provider.FromConfig(provider.Config{
		ID:      cfg.Provider.API,
		API:     cfg.Provider.API,
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  apiKey,
	})
	if err != nil {
		zap.L().Error("configuring provider", zap.Error(err))
		return 1
	}

	ctx := context.Background()

	switch args.mode {
	case modeSuggest:
		if args.app == "" {
			zap.L().Error("-app is required for suggest mode")
			return 1
		}
		s := engine.NewSuggester(p, cfg.Provider.Model, cfg.Suggest.MaxToolsPerServer)
		return emit(out, s.Suggest(ctx, args.app, args.mcpServers))

	case modeOrchestrate:
		if args.tools == "" || args.prompt == "" {
			zap.L().Error("-tools and -prompt are required for orchestrate mode")
			fmt.Fprintln(out, engine.NoTool(""))
			return 0
		}
		r := engine.NewRouter(p, cfg.Provider.Model)
		fmt.Fprintln(out, r.Route(ctx, args.tools, args.prompt))
		return 0

	default: // modeAnalyze
		if args.app == "" || args.interactions == "" {
			zap.L().Error("-app and -interactions are required for analyze-workflows mode")
			return emit(out, []ring.Workflow{})
		}
		a := engine.NewAnalyzer(p, cfg.Provider.Model, cfg.Analysis.MinConfidence)
		return emit(out, a.Analyze(ctx, args.app, args.interactions))
	}
}

// runWithoutCredential short-circuits every mode to its deterministic
// fallback without constructing a provider. The mode has already been
// validated by run.
func runWithoutCredential(args cliArgs, out io.Writer) int {
	switch args.mode {
	case modeSuggest:
		app := args.app
		if app == "" {
			app = "Default"
		}
		return emit(out, ring.Defaults(app))
	case modeAnalyze:
		return emit(out, []ring.Workflow{})
	default: // modeOrchestrate
		fmt.Fprintln(out, engine.NoTool("API key missing"))
		return 0
	}
}

// emit writes one JSON-encoded value to out.
func emit(out io.Writer, v any) int {
	b, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("encoding result", zap.Error(err))
		return 1
	}
	fmt.Fprintln(out, string(b))
	return 0
}
