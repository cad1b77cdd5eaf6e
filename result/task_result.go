package result

// Task represents one unit of work with its position in the original submission.
type Task[T any] struct {
	Index int
	Input T
}

// TaskResult wraps a Result with the index it was submitted at.
// Results are always placed at their submission index, whatever the
// completion order was.
type TaskResult[T any] struct {
	Index  int
	Output Result[T]
}

// NewTaskResult creates a new TaskResult.
func NewTaskResult[T any](index int, output Result[T]) TaskResult[T] {
	return TaskResult[T]{
		Index:  index,
		Output: output,
	}
}

// TaskProcessor defines an interface for processing tasks.
type TaskProcessor[T any, U any] interface {
	Process(input T) Result[U]
}

// ProcessorFunc adapts a plain function to the TaskProcessor interface.
type ProcessorFunc[T any, U any] func(input T) Result[U]

// Process implements TaskProcessor.
func (f ProcessorFunc[T, U]) Process(input T) Result[U] {
	return f(input)
}
