package xport

import (
	"fmt"
	"strconv"
)

// Parse 将十进制字符串严格解析为端口号。
//
// 不接受符号、空白与任何非数字字符；接受前导零（"0080" 等非规范形式）。
// 错误种类可用 errors.Is 区分：
//   - 空输入 → [ErrEmpty]
//   - 非数字字符 → [ErrMalformed]
//   - 数值大于 65535 → [ErrOutOfRange]
//
// 失败时不返回任何部分结果。
func Parse(s string) (Port, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: invalid character %q in %q", ErrMalformed, s[i], s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// 纯数字输入仅可能因超出 uint64 而失败
		return 0, fmt.Errorf("%w: %q exceeds 65535", ErrOutOfRange, s)
	}
	if n > 65535 {
		return 0, fmt.Errorf("%w: %d exceeds 65535", ErrOutOfRange, n)
	}
	return Port(n), nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Port {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xport.MustParse(%q): %v", s, err))
	}
	return p
}

// FromInt 从整数创建端口号。
// 超出 [0, 65535] 返回 [ErrOutOfRange]，绝不截断或回绕。
func FromInt(n int) (Port, error) {
	if n < 0 || n > 65535 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return Port(n), nil
}
