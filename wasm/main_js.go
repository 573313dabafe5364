//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/axuy/axuy/api"
	"github.com/axuy/axuy/torus"
	"github.com/axuy/axuy/view"
)

func toJS(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

// gentiles(count, fillPercent, seed[, generator]) -> Uint8Array
func gentiles(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return js.ValueOf("missing count, fill or seed")
	}
	gen := api.GenRandom
	if len(args) > 3 {
		gen = args[3].String()
	}
	out, err := api.GenerateTilesBytes(gen, args[0].Int(), args[1].Float(), uint64(args[2].Int()), torus.CompZstd)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toJS(out)
}

// map2glb(tiles Uint8Array, mapid string) -> Uint8Array
func map2glb(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.ValueOf("missing tiles or map id")
	}
	buf := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(buf, args[0])
	mapid, err := api.ParseMapID(args[1].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	out, err := api.MapToGLB(buf, mapid, view.DefaultColor)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toJS(out)
}

func main() {
	js.Global().Set("gentiles", js.FuncOf(gentiles))
	js.Global().Set("map2glb", js.FuncOf(map2glb))
	select {}
}
