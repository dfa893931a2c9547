package stdlib

import (
	"time"

	"github.com/lemonberrylabs/golox/pkg/types"
)

// registerTime registers clock(), which returns the current time in seconds
// (fractional) so Lox programs can measure elapsed time by subtraction.
func (r *Registry) registerTime() {
	r.Register("clock", 0, func(args []types.Value) (types.Value, error) {
		seconds := float64(time.Now().UnixNano()) / float64(time.Second)
		return types.NewNumber(seconds), nil
	})
}
