package namegen

import (
	"github.com/abhissng/versename/adapters/log"
	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/corpus"
	"github.com/abhissng/versename/dispatcher"
	"github.com/abhissng/versename/result"
	"github.com/abhissng/versename/utils/helpers"
)

// Generator turns poems into name suggestions by driving prompts through the
// rate-limited dispatcher into the remote client.
type Generator struct {
	client        *Client
	rpm           int
	maxConcurrent int
	logger        *log.Log
}

// promptTask pairs a prompt with its poem's index so a malformed one can be
// reported at the right place in the results.
type promptTask struct {
	index int
	text  string
}

// NewGenerator creates a Generator over the given client.
func NewGenerator(client *Client, options ...GeneratorOption) (*Generator, blame.Blame) {
	if client == nil {
		return nil, blame.InvalidDispatcherConfig("generator requires a client")
	}
	g := &Generator{
		client:        client,
		rpm:           dispatcher.DefaultRPM,
		maxConcurrent: 0, // dispatcher mirrors rpm when unset
		logger:        log.NewBasicLogger(helpers.IsProdEnvironment()),
	}
	for _, option := range options {
		option(g)
	}
	return g, nil
}

// Generate runs one batch: entry i of the returned slice holds the outcome
// for poems[i]. A poem with no usable text settles as a failure at its own
// index; everything else still runs.
func (g *Generator) Generate(poems []corpus.Poem) ([]result.TaskResult[Suggestion], blame.Blame) {
	tasks := make([]promptTask, len(poems))
	for i, poem := range poems {
		tasks[i] = promptTask{index: i, text: BuildPrompt(poem)}
	}

	processor := result.ProcessorFunc[promptTask, Suggestion](func(task promptTask) result.Result[Suggestion] {
		if helpers.IsEmpty(task.text) {
			return result.NewFailure[Suggestion](blame.EmptyPrompt(task.index))
		}
		return g.client.Suggest(task.text)
	})

	return dispatcher.RunBatch(processor, tasks,
		dispatcher.WithRPM[promptTask, Suggestion](g.rpm),
		dispatcher.WithMaxConcurrent[promptTask, Suggestion](g.maxConcurrent),
		dispatcher.WithLogger[promptTask, Suggestion](g.logger),
	)
}

// GeneratorOption is a function type for configuring the Generator.
type GeneratorOption func(*Generator)

// WithRPM sets the call-start budget per minute for the batch.
func WithRPM(rpm int) GeneratorOption {
	return func(g *Generator) {
		g.rpm = rpm
	}
}

// WithMaxConcurrent caps the calls in flight at once.
func WithMaxConcurrent(maxConcurrent int) GeneratorOption {
	return func(g *Generator) {
		g.maxConcurrent = maxConcurrent
	}
}

// WithLogger sets the logger for the generator and its batches.
func WithLogger(logger *log.Log) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}
