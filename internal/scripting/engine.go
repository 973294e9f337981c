// Package scripting runs the page's responsive hooks: small JavaScript
// snippets that restyle elements when the viewport changes, standing in
// for the stylesheet media queries a live page would have.
package scripting

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/okvist/pagesync/internal/page"
)

// Engine executes page hooks.
type Engine struct {
	timeout time.Duration
}

// NewEngine creates a scripting engine with the given timeout.
func NewEngine(timeout time.Duration) *Engine {
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	return &Engine{timeout: timeout}
}

// Result holds hook execution results.
type Result struct {
	Logs []string
	Err  error
}

// RunResize executes doc's onresize hook against the current viewport.
// The hook may restyle elements through the page API; the caller decides
// what happens next (normally: publish the resize event).
func (e *Engine) RunResize(doc *page.Document) *Result {
	if doc.OnResize == "" {
		return &Result{}
	}
	api := newHookAPI(doc)
	err := e.run(doc.OnResize, api)
	return &Result{Logs: api.logs, Err: err}
}

func (e *Engine) run(script string, api *hookAPI) error {
	vm := goja.New()
	api.registerOnRuntime(vm)

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	// Interrupt VM on timeout
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("hook timeout exceeded")
		case <-done:
		}
	}()

	_, err := vm.RunString(script)
	close(done)

	if err != nil {
		return fmt.Errorf("hook error: %w", err)
	}
	return nil
}
