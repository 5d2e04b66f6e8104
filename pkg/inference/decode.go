package inference

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// elements returns the elements of a JSON array, or nil if the value is
// not an array
func elements(data json.RawMessage) []json.RawMessage {
	var result []json.RawMessage
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return result
}

// first decodes the first element of a JSON array into v, and returns
// false if there is no first element or it does not decode
func first[T any](data json.RawMessage, v *T) bool {
	if elems := elements(data); len(elems) == 0 {
		return false
	} else {
		return json.Unmarshal(elems[0], v) == nil
	}
}
