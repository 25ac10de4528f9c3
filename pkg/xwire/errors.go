package xwire

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrUnknownClass 表示无法识别的分类标签。
	ErrUnknownClass = errors.New("xwire: unknown class label")
)
