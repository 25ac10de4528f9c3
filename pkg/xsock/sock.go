package xsock

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/omeyang/netsem/pkg/xip"
	"github.com/omeyang/netsem/pkg/xport"
)

// Parse 解析组合形式的套接字地址字符串。
//
// 支持 "host:port"（IPv4）与 "[ipv6]:port"（IPv6 字面量必须加方括号）。
// 拆分后 host 经 [xip.Parse]、port 经 [xport.Parse] 各自严格校验，
// 子解析错误原样透传，errors.Is 仍可命中 xip/xport 的错误变量。
//
// 错误：
//   - 空输入 → [ErrEmpty]
//   - 缺少端口分隔符或方括号未闭合 → [ErrMalformed]
//   - 未加方括号且含多个 ':' 的输入（如 "::1:80"）→ [ErrAmbiguous]：
//     最后一个 ':' 既可能是端口分隔符也可能是地址的一部分，
//     与其猜测不如拒绝
//
// 设计决策: 不使用 [netip.ParseAddrPort]——它把空输入、歧义拆分和
// 一般语法错误折叠为同一种错误，也无法保证两个分量都无效时
// 报告哪一个，而这里需要确定性的单一错误（host 优先）。
func Parse(s string) (netip.AddrPort, error) {
	if s == "" {
		return netip.AddrPort{}, ErrEmpty
	}
	host, port, err := splitHostPort(s)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return Compose(host, port)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) netip.AddrPort {
	ap, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xsock.MustParse(%q): %v", s, err))
	}
	return ap
}

// Compose 分别校验 IP 与端口后组合为套接字地址。
//
// 两个分量独立校验；都无效时报告 host 错误
// （确定性的单一错误，而非复合错误）。
func Compose(ipStr, portStr string) (netip.AddrPort, error) {
	addr, err := xip.Parse(ipStr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid host: %w", err)
	}
	p, err := xport.Parse(portStr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid port: %w", err)
	}
	return netip.AddrPortFrom(addr, uint16(p)), nil
}

// Join 将已验证的地址与端口组合为 [netip.AddrPort]。
// 不做额外校验：两个分量各自的不变量已保证组合有效，
// 组合本身没有新增不变量。
func Join(addr netip.Addr, p xport.Port) netip.AddrPort {
	return netip.AddrPortFrom(addr, uint16(p))
}

// Classify 返回套接字地址两个分量的分类。
// 纯委托：套接字地址自身没有独立的分类逻辑。
func Classify(ap netip.AddrPort) (xip.Class, xport.Class) {
	return xip.Classify(ap.Addr()), xport.Classify(xport.Port(ap.Port()))
}

// splitHostPort 将 s 拆分为 host 与 port 两部分，不做分量校验。
// 方括号形式用于 IPv6 字面量；未加方括号时仅允许出现一个 ':'。
func splitHostPort(s string) (host, port string, err error) {
	if s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return "", "", fmt.Errorf("%w: missing ']' in %q", ErrMalformed, s)
		}
		if end+1 >= len(s) || s[end+1] != ':' {
			return "", "", fmt.Errorf("%w: missing port after bracket in %q", ErrMalformed, s)
		}
		return s[1:end], s[end+2:], nil
	}
	first := strings.IndexByte(s, ':')
	if first < 0 {
		return "", "", fmt.Errorf("%w: missing port in %q", ErrMalformed, s)
	}
	if strings.IndexByte(s[first+1:], ':') >= 0 {
		return "", "", fmt.Errorf("%w: unbracketed IPv6 literal in %q (use \"[addr]:port\")", ErrAmbiguous, s)
	}
	return s[:first], s[first+1:], nil
}
