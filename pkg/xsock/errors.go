package xsock

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xsock: empty input")

	// ErrMalformed 表示组合形式语法无效（缺少端口分隔符、方括号未闭合等）。
	ErrMalformed = errors.New("xsock: malformed socket address")

	// ErrAmbiguous 表示 host:port 无法无歧义拆分
	// （未加方括号的 IPv6 字面量含多个 ':'）。
	ErrAmbiguous = errors.New("xsock: ambiguous host:port split")
)
