package test

import (
	"encoding/json"
	"net/http/httptest"
)

// JSONResponseRecorder 记录 handler 写回的 JSON 响应，方便断言
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r *JSONResponseRecorder[T]) Scan() (Result[T], error) {
	var res Result[T]
	err := json.Unmarshal(r.Body.Bytes(), &res)
	return res, err
}

// MustScan 解析失败直接 panic，测试里面用
func (r *JSONResponseRecorder[T]) MustScan() Result[T] {
	res, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return res
}
