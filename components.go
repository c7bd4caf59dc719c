package main

import "context"

type Input struct {
	Name string
	Path string
}

type Output struct {
	Stdout []byte
	Stderr []byte
}

// Executor runs the solver once with the given arguments and blocks until it
// exits. A non-zero exit is reported as *ExitError.
type Executor interface {
	Run(ctx context.Context, args []string) (Output, error)
}

type Recorder interface {
	InitResultsDb(ctx context.Context, meta map[string]any) error
	UpdateResultsDb(ctx context.Context, result Result) error
}

type Result struct {
	Input   Input
	Samples []int64
	Summary Summary
}
