package xport

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xport: empty input")

	// ErrMalformed 表示端口文本含有符号、空白或其他非数字字符。
	ErrMalformed = errors.New("xport: non-numeric port")

	// ErrOutOfRange 表示数值超出 [0, 65535]。
	ErrOutOfRange = errors.New("xport: port out of range")
)
