package test

import (
	"encoding/json"
	"net/http/httptest"

	"gitee.com/flycash/communication-platform/internal/web"
)

// JSONResponseRecorder 把响应体解析成统一的 Result 结构
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r *JSONResponseRecorder[T]) MustScan() web.Result[T] {
	var res web.Result[T]
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		panic(err)
	}
	return res
}
