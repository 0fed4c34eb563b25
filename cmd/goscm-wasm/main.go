// Command goscm-wasm builds goscm as a WebAssembly module callable from
// JavaScript: goscmCreateSession returns a new session id, and goscmEval
// evaluates every form of a source string against that session and
// returns its output and printed value or an error string, mirroring
// original_source/src/wasm.rs and built the way the
// teacher's cmd/dwscript-wasm bridges Go to syscall/js.
//
//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/goscm/pkg/goscm"
)

func main() {
	done := make(chan struct{})
	store := goscm.NewSessionStore()

	js.Global().Set("goscmCreateSession", js.FuncOf(func(this js.Value, args []js.Value) any {
		id := store.Create()
		return id.String()
	}))

	js.Global().Set("goscmEval", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return jsResult("", "goscm: eval requires a session id and source text")
		}
		interp, err := store.GetByString(args[0].String())
		if err != nil {
			return jsResult("", err.Error())
		}
		result, err := interp.Eval(args[1].String())
		output := interp.Drain()
		if err != nil {
			return jsResult(output, err.Error())
		}
		return jsResult(output+result, "")
	}))

	js.Global().Get("console").Call("log", "goscm wasm module ready")
	<-done
}

func jsResult(output, errMsg string) map[string]any {
	return map[string]any{"output": output, "error": errMsg}
}
