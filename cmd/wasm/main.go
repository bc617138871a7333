//go:build js && wasm

// Command wasm exposes the train motion engine to the browser via WebAssembly.
// After loading, it registers three global JavaScript functions:
//
//	solveMeeting(paramsJSON) -> jsonString
//	positionsAt(sampleJSON) -> jsonString
//	runSimulation(inputJSON) -> jsonString
//
// The page calls solveMeeting whenever an input changes, drives its own frame
// timer with positionsAt, or fetches every frame at once with runSimulation.
// Errors are returned as {"error": "..."} objects.
package main

import (
	"syscall/js"

	"github.com/cxd309/train-motion/internal/engine"
)

func main() {
	js.Global().Set("solveMeeting", js.FuncOf(wrap(engine.SolveJSON)))
	js.Global().Set("positionsAt", js.FuncOf(wrap(engine.PositionsJSON)))
	js.Global().Set("runSimulation", js.FuncOf(wrap(engine.RunJSON)))
	select {} // keep the WASM module alive until the page is closed
}

func wrap(fn func(string) (string, error)) func(js.Value, []js.Value) any {
	return func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return map[string]any{"error": "no input provided"}
		}

		result, err := fn(args[0].String())
		if err != nil {
			return map[string]any{"error": err.Error()}
		}
		return result
	}
}
