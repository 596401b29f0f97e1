package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/tradingdata/trading-bridge/internal/conv"
)

// Result is the normalized outcome of a tool invocation: either Data or
// Error is meaningful. A nil *Result means nothing was invoked.
type Result struct {
	Data  interface{}
	Error string
}

// Failed reports whether r carries an error.
func (r *Result) Failed() bool {
	return r != nil && r.Error != ""
}

// Decode converts Data into dest.
func (r *Result) Decode(dest interface{}) error {
	if r == nil {
		return fmt.Errorf("nil result")
	}
	if r.Failed() {
		return fmt.Errorf("%s", r.Error)
	}
	return conv.Convert(r.Data, dest)
}

// MarshalJSON renders {"error": ...} for failures and {"data": ...}
// otherwise.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}
	return json.Marshal(struct {
		Data interface{} `json:"data"`
	}{r.Data})
}
