package scripting

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/okvist/pagesync/internal/page"
)

// hookAPI exposes the page to hooks: a `viewport` object, a `page`
// object with element handles, and `console.log`.
type hookAPI struct {
	doc  *page.Document
	logs []string
}

func newHookAPI(doc *page.Document) *hookAPI {
	return &hookAPI{doc: doc}
}

func (a *hookAPI) registerOnRuntime(vm *goja.Runtime) {
	viewport := vm.NewObject()
	viewport.Set("width", a.doc.Viewport().Width)
	viewport.Set("height", a.doc.Viewport().Height)
	vm.Set("viewport", viewport)

	pageObj := vm.NewObject()
	pageObj.Set("get", func(call goja.FunctionCall) goja.Value {
		id := call.Argument(0).String()
		el := a.doc.ElementByID(id)
		if el == nil {
			return goja.Null()
		}
		return a.elementHandle(vm, el)
	})
	vm.Set("page", pageObj)

	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		args := make([]interface{}, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = arg.Export()
		}
		a.logs = append(a.logs, fmt.Sprint(args...))
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func (a *hookAPI) elementHandle(vm *goja.Runtime, el *page.Element) goja.Value {
	obj := vm.NewObject()
	obj.Set("id", el.ID)
	obj.Set("get", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(el.Computed(call.Argument(0).String()))
	})
	obj.Set("set", func(call goja.FunctionCall) goja.Value {
		el.SetDeclared(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})
	obj.Set("clear", func(call goja.FunctionCall) goja.Value {
		el.ClearInline(call.Argument(0).String())
		return goja.Undefined()
	})
	return obj
}
