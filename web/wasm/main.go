//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"

	"github.com/ed-devane/soniphorm-sub000/fx"
	"github.com/ed-devane/soniphorm-sub000/render"
)

var (
	catalog *fx.Registry
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		seed := int64(1)
		if len(args) > 0 {
			seed = int64(args[0].Int())
		}
		catalog = fx.NewCatalog(fx.WithRenderer(render.New()), fx.WithSeed(seed))
		return js.Null()
	}))

	api.Set("catalog", export(func(args []js.Value) any {
		if catalog == nil {
			return js.Global().Get("Array").New(0)
		}
		names := catalog.Names()
		list := js.Global().Get("Array").New(len(names))
		for i, name := range names {
			effect := catalog.Lookup(name)
			entry := js.Global().Get("Object").New()
			entry.Set("name", name)
			entry.Set("label", effect.Label())
			_, needsSource := effect.(fx.SourceEffect)
			entry.Set("needsSource", needsSource)
			entry.Set("params", encodeParams(effect.Parameters()))
			list.SetIndex(i, entry)
		}
		return list
	}))

	api.Set("apply", export(func(args []js.Value) any {
		if catalog == nil {
			return "engine not initialised"
		}
		if len(args) < 2 {
			return "apply needs an effect name and a request object"
		}
		name := args[0].String()
		effect := catalog.Lookup(name)
		if effect == nil {
			return "unknown effect: " + name
		}

		req := args[1]
		buf, err := decodeBuffer(req)
		if err != nil {
			return err.Error()
		}

		start, end := 0, buf.Len()
		if v := req.Get("start"); v.Type() == js.TypeNumber {
			start = v.Int()
		}
		if v := req.Get("end"); v.Type() == js.TypeNumber && v.Int() > 0 {
			end = v.Int()
		}
		if err := fx.ValidateRegion(buf, start, end); err != nil {
			return err.Error()
		}

		values := decodeValues(req.Get("params"))

		var out *fx.Buffer
		if src, ok := effect.(fx.SourceEffect); ok {
			sourceVal := req.Get("source")
			if sourceVal.Type() != js.TypeObject {
				return fx.ErrNoSource.Error()
			}
			source, err := decodeBuffer(sourceVal)
			if err != nil {
				return err.Error()
			}
			out, err = src.ProcessWithSource(buf, source, start, end, values)
			if err != nil {
				return err.Error()
			}
		} else {
			out, err = effect.Process(buf, start, end, values)
			if err != nil {
				return err.Error()
			}
		}
		return encodeBuffer(out)
	}))

	js.Global().Set("Soniphorm", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func encodeParams(specs []fx.ParameterSpec) js.Value {
	params := js.Global().Get("Array").New(len(specs))
	for i, spec := range specs {
		p := js.Global().Get("Object").New()
		p.Set("key", spec.Key)
		p.Set("label", spec.Label)
		if spec.Kind() == fx.KindEnum {
			opts := js.Global().Get("Array").New(len(spec.Options))
			for j, opt := range spec.Options {
				opts.SetIndex(j, opt)
			}
			p.Set("options", opts)
			p.Set("default", spec.DefaultOption)
		} else {
			p.Set("unit", spec.Unit)
			p.Set("min", spec.Min)
			p.Set("max", spec.Max)
			p.Set("step", spec.Step)
			p.Set("default", spec.Default)
			p.Set("log", spec.Scale == fx.ScaleLog)
		}
		params.SetIndex(i, p)
	}
	return params
}

func decodeBuffer(v js.Value) (*fx.Buffer, error) {
	if v.Type() != js.TypeObject {
		return nil, errors.New("buffer must be an object with sampleRate and channels")
	}
	chans := v.Get("channels")
	if chans.Type() != js.TypeObject || chans.Length() == 0 {
		return nil, errors.New("buffer has no channel data")
	}
	channels := make([][]float64, chans.Length())
	for ch := range channels {
		arr := chans.Index(ch)
		data := make([]float64, arr.Length())
		for i := 0; i < len(data); i++ {
			data[i] = arr.Index(i).Float()
		}
		channels[ch] = data
	}
	return fx.FromChannels(v.Get("sampleRate").Float(), channels)
}

func encodeBuffer(buf *fx.Buffer) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("sampleRate", buf.SampleRate)
	chans := js.Global().Get("Array").New(buf.NumChannels())
	for ch, data := range buf.Channels {
		arr := js.Global().Get("Float32Array").New(len(data))
		for i := 0; i < len(data); i++ {
			arr.SetIndex(i, float32(data[i]))
		}
		chans.SetIndex(ch, arr)
	}
	out.Set("channels", chans)
	return out
}

func decodeValues(params js.Value) fx.Values {
	if params.Type() != js.TypeObject {
		return nil
	}
	keys := js.Global().Get("Object").Call("keys", params)
	values := make(fx.Values, keys.Length())
	for i := 0; i < keys.Length(); i++ {
		key := keys.Index(i).String()
		switch v := params.Get(key); v.Type() {
		case js.TypeNumber:
			values[key] = fx.Num(v.Float())
		case js.TypeString:
			values[key] = fx.Str(v.String())
		}
	}
	return values
}
