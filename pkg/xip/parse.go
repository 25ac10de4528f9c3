package xip

import (
	"fmt"
	"net/netip"
	"strings"
)

// Parse 将字符串严格解析为 IP 地址字面量。
//
// 接受的形式：
//   - IPv4 点分十进制："192.168.1.1"（每段 0–255，接受前导零）
//   - IPv6 标准表示：包括 "::" 压缩形式与 IPv4-mapped 形式（"::ffff:192.168.1.1"）
//
// 与 [netip.ParseAddr] 的差异：
//   - 不接受首尾空白：语法必须精确匹配，调用方需自行 TrimSpace
//   - 拒绝 IPv6 zone ID（如 "fe80::1%eth0"）
//   - 区分错误种类：语法错误报告 [ErrMalformed]，八位组越界报告
//     [ErrOutOfRange]，空输入报告 [ErrEmpty]，均可用 errors.Is 判断
//
// 设计决策: 拒绝 zone ID 的原因与集合运算一致——zone 信息会在分类与
// 序列化中被静默丢弃，导致调用方误判，属于正确性风险。
// IP 地址字符串中 '%' 仅用作 zone 分隔符，因此检查 '%' 即可。
//
// 失败时不返回任何部分解析结果。
func Parse(s string) (netip.Addr, error) {
	if s == "" {
		return netip.Addr{}, ErrEmpty
	}
	if strings.Contains(s, "%") {
		return netip.Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrMalformed, s)
	}
	// 含 ':' 的输入是 IPv6（或 IPv4-mapped IPv6），交给标准库解析
	if strings.Contains(s, ":") {
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: %s", ErrMalformed, s)
		}
		return addr, nil
	}
	return parseIPv4(s)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) netip.Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xip.MustParse(%q): %v", s, err))
	}
	return addr
}

// IsValid 报告 s 是否为语法有效的 IP 地址字面量。
// 仅做语法检查，不做任何 DNS 解析或网络操作。
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// parseIPv4 解析点分十进制 IPv4。
//
// 自行解析而非使用 [netip.ParseAddr]，原因有二：
//   - netip 对"八位组越界"和"语法错误"返回同一种错误，无法映射到
//     独立的错误种类
//   - netip 拒绝前导零（"192.168.001.001"），而本包接受非规范形式
//
// 扫描是单趟、有界的：八位组累计值一旦超过 255 立即报错，
// 不存在整数溢出或无界累积。
func parseIPv4(s string) (netip.Addr, error) {
	var b [4]byte
	octet := 0  // 当前八位组的累计值
	digits := 0 // 当前八位组已读的数字个数
	seg := 0    // 已完成的八位组个数
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
			octet = octet*10 + int(c-'0')
			if octet > 255 {
				return netip.Addr{}, fmt.Errorf("%w: octet > 255 in %q", ErrOutOfRange, s)
			}
		case c == '.':
			if digits == 0 {
				return netip.Addr{}, fmt.Errorf("%w: empty octet in %q", ErrMalformed, s)
			}
			if seg == 3 {
				return netip.Addr{}, fmt.Errorf("%w: too many octets in %q", ErrMalformed, s)
			}
			b[seg] = byte(octet)
			seg++
			octet, digits = 0, 0
		default:
			return netip.Addr{}, fmt.Errorf("%w: invalid character %q in %q", ErrMalformed, c, s)
		}
	}
	if digits == 0 {
		return netip.Addr{}, fmt.Errorf("%w: empty octet in %q", ErrMalformed, s)
	}
	if seg != 3 {
		return netip.Addr{}, fmt.Errorf("%w: expected 4 octets, got %d in %q", ErrMalformed, seg+1, s)
	}
	b[3] = byte(octet)
	return netip.AddrFrom4(b), nil
}
