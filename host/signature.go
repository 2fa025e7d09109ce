package host

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/kernlet-dev/kernlet-sdk/internal/abi"
	"github.com/kernlet-dev/kernlet-sdk/manifest"
)

// signature is the WASM-level shape of an exported function.
type signature struct {
	params  []api.ValueType
	results []api.ValueType
}

func (s signature) String() string {
	return fmt.Sprintf("(%s) -> (%s)", valueTypeList(s.params), valueTypeList(s.results))
}

func valueTypeList(types []api.ValueType) string {
	names := make([]string, len(types))
	for i, vt := range types {
		names[i] = api.ValueTypeName(vt)
	}
	return strings.Join(names, ", ")
}

// kernelABI is the required shape of each kernel export, keyed by symbol
// name. The staging pair is listed too so that a module shipping it with
// the wrong shape is rejected at load time.
var kernelABI = map[string]signature{
	abi.ExportCollatzSteps: {
		params:  []api.ValueType{api.ValueTypeI32},
		results: []api.ValueType{api.ValueTypeI32},
	},
	abi.ExportBubbleSort: {
		params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
	},
	abi.ExportAllocate: {
		params:  []api.ValueType{api.ValueTypeI32},
		results: []api.ValueType{api.ValueTypeI32},
	},
	abi.ExportDeallocate: {
		params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
	},
}

// checkSignature compares an instantiated export against its required
// shape.
func checkSignature(symbol string, def api.FunctionDefinition, want signature) error {
	got := signature{params: def.ParamTypes(), results: def.ResultTypes()}
	if !slices.Equal(got.params, want.params) || !slices.Equal(got.results, want.results) {
		return &SignatureError{Symbol: symbol, Want: want.String(), Got: got.String()}
	}
	return nil
}

// signatureFromManifest translates a manifest export declaration into the
// engine's type vocabulary.
func signatureFromManifest(exp manifest.Export) (signature, error) {
	params, err := valueTypes(exp.Params)
	if err != nil {
		return signature{}, fmt.Errorf("export %q: %w", exp.Name, err)
	}
	results, err := valueTypes(exp.Results)
	if err != nil {
		return signature{}, fmt.Errorf("export %q: %w", exp.Name, err)
	}
	return signature{params: params, results: results}, nil
}

func valueTypes(names []string) ([]api.ValueType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]api.ValueType, len(names))
	for i, name := range names {
		switch name {
		case "i32":
			out[i] = api.ValueTypeI32
		case "i64":
			out[i] = api.ValueTypeI64
		case "f32":
			out[i] = api.ValueTypeF32
		case "f64":
			out[i] = api.ValueTypeF64
		default:
			return nil, fmt.Errorf("unknown value type %q", name)
		}
	}
	return out, nil
}
