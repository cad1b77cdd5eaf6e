// Command versename runs the full naming pipeline: it loads a poem corpus,
// normalizes it through the conversion plugins, asks the remote naming service
// for suggestions under the configured rate limits, and writes the outcome as
// JSON.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/abhissng/versename/adapters/log"
	adapterviper "github.com/abhissng/versename/adapters/viper"
	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/corpus"
	"github.com/abhissng/versename/namegen"
	"github.com/abhissng/versename/result"
	"github.com/abhissng/versename/utils/constant"
	"github.com/abhissng/versename/utils/helpers"
	"github.com/abhissng/versename/utils/workerpool"
)

// AppConfig is the pipeline configuration, loaded from versename.yaml.
type AppConfig struct {
	CorpusDir     string `mapstructure:"corpus_dir" validate:"required"`
	OutputFile    string `mapstructure:"output_file" validate:"required"`
	ServiceURL    string `mapstructure:"service_url" validate:"required,url"`
	APIKey        string `mapstructure:"api_key"`
	RPM           int    `mapstructure:"rpm" validate:"gt=0"`
	MaxConcurrent int    `mapstructure:"max_concurrent" validate:"gte=0"`
	UseFastHTTP   bool   `mapstructure:"use_fasthttp"`
	LogFile       string `mapstructure:"log_file"`
	Prod          bool   `mapstructure:"prod"`
}

// poemOutcome is one line of the output file.
type poemOutcome struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Names  []string `json:"names,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func main() {
	configPath := flag.String("config", ".", "directory holding versename.yaml")
	flag.Parse()

	cfg, berr := loadConfig(*configPath)
	if berr != nil {
		helpers.Println(constant.ERROR, "configuration error: ", berr)
		os.Exit(1)
	}

	logger, err := log.NewLogger(log.NewLoggerConfig(cfg.Prod, log.WithRotateFile(cfg.LogFile)))
	if err != nil {
		helpers.Println(constant.ERROR, "logger setup failed: ", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if berr := run(cfg, logger); berr != nil {
		logger.Error("pipeline failed", log.Blame(berr))
		os.Exit(1)
	}
}

func loadConfig(path string) (*AppConfig, blame.Blame) {
	v := adapterviper.NewViper("versename", "yaml", path)
	if err := v.InitialiseViper(); err != nil {
		return nil, blame.ConfigLoadFailure(err)
	}

	cfg := &AppConfig{RPM: 10}
	if err := adapterviper.UnmarshalConfig(cfg); err != nil {
		return nil, blame.ConfigLoadFailure(err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, blame.ConfigValidationFailure(err)
	}
	return cfg, nil
}

func run(cfg *AppConfig, logger *log.Log) blame.Blame {
	poems, berr := corpus.LoadDir(cfg.CorpusDir)
	if berr != nil {
		return berr
	}
	logger.Info("corpus loaded", log.String("dir", cfg.CorpusDir), log.Int("poems", len(poems)))

	converted, berr := convertCorpus(poems, logger)
	if berr != nil {
		return berr
	}

	suggestions, berr := generateNames(cfg, converted, logger)
	if berr != nil {
		return berr
	}

	return writeOutcomes(cfg.OutputFile, converted, suggestions, logger)
}

// convertCorpus normalizes the poems through the plugin chain on a local
// worker pool; this is CPU-bound work with no rate limit.
func convertCorpus(poems []corpus.Poem, logger *log.Log) ([]corpus.Poem, blame.Blame) {
	chain := corpus.Chain{corpus.SplitParagraphs{}}

	processor := result.ProcessorFunc[corpus.Poem, corpus.Poem](func(p corpus.Poem) result.Result[corpus.Poem] {
		out := chain.Apply(p)
		return result.NewSuccess(&out)
	})

	pool, berr := workerpool.New(processor,
		workerpool.WithNumWorkers[corpus.Poem, corpus.Poem](workerpool.OptimalWorkers(len(poems))),
		workerpool.WithLogger[corpus.Poem, corpus.Poem](logger),
	)
	if berr != nil {
		return nil, berr
	}

	converted := make([]corpus.Poem, len(poems))
	for _, res := range pool.Execute(poems) {
		converted[res.Index] = *res.Output.ToValue()
	}
	logger.Info("corpus converted", log.Int("poems", len(converted)))
	return converted, nil
}

func generateNames(cfg *AppConfig, poems []corpus.Poem, logger *log.Log) ([]result.TaskResult[namegen.Suggestion], blame.Blame) {
	clientOptions := []namegen.ClientOption{
		namegen.WithFastHTTP(cfg.UseFastHTTP),
		namegen.WithClientLogger(logger),
	}
	if !helpers.IsEmpty(cfg.APIKey) {
		clientOptions = append(clientOptions, namegen.WithHeader("Authorization", "Bearer "+cfg.APIKey))
	}

	client, berr := namegen.NewClient(cfg.ServiceURL, clientOptions...)
	if berr != nil {
		return nil, berr
	}

	generator, berr := namegen.NewGenerator(client,
		namegen.WithRPM(cfg.RPM),
		namegen.WithMaxConcurrent(cfg.MaxConcurrent),
		namegen.WithLogger(logger),
	)
	if berr != nil {
		return nil, berr
	}
	return generator.Generate(poems)
}

func writeOutcomes(path string, poems []corpus.Poem, suggestions []result.TaskResult[namegen.Suggestion], logger *log.Log) blame.Blame {
	outcomes := make([]poemOutcome, len(poems))
	failures := 0
	for i, res := range suggestions {
		outcome := poemOutcome{Title: poems[i].Title, Author: poems[i].Author}
		if res.Output.IsSuccess() {
			outcome.Names = res.Output.ToValue().Names
		} else {
			outcome.Error = res.Output.Error().FetchErrCode().String()
			failures++
		}
		outcomes[i] = outcome
	}

	data, err := json.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		return blame.CorpusWriteFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return blame.CorpusWriteFailed(path, err)
	}

	logger.Info("outcomes written",
		log.String("path", path),
		log.Int("poems", len(outcomes)),
		log.Int("failures", failures),
	)
	return nil
}
