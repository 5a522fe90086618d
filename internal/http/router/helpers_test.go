package router

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
