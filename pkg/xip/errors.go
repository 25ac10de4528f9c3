package xip

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xip: empty input")

	// ErrMalformed 表示地址文本语法无效（非法字符、段数错误、空八位组等）。
	ErrMalformed = errors.New("xip: malformed address")

	// ErrOutOfRange 表示数值超出有效域（IPv4 八位组大于 255）。
	ErrOutOfRange = errors.New("xip: value out of range")
)
