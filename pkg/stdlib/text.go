package stdlib

import "github.com/lemonberrylabs/golox/pkg/types"

// registerText registers string helpers: str() converts any value to its
// display string, len() returns a string's byte length.
func (r *Registry) registerText() {
	r.Register("str", 1, func(args []types.Value) (types.Value, error) {
		return types.NewString(args[0].String()), nil
	})

	r.Register("len", 1, func(args []types.Value) (types.Value, error) {
		if args[0].Type() != types.TypeString {
			return types.Null, typeError("len() expects a string, got %s.", args[0].Type())
		}
		return types.NewNumber(float64(len(args[0].AsString()))), nil
	})
}
