package utils

import (
	jsonv2 "github.com/go-json-experiment/json"
)

// Remarshal projects input into output going through its JSON shape. It is
// how records reach their map form for id lookups and filter matching.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := jsonv2.Marshal(input)
	if nil != err {
		return
	}
	return jsonv2.Unmarshal(b, output)
}
