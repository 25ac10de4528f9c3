package xip

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strings"
)

// Normalize 将 IP 地址字符串规范化为标准形式。
// 去除前导零，压缩 IPv6 缩写（[netip.Addr.String] 的输出形式）。
// 输入经 [Parse] 严格校验，失败时透传其错误。
func Normalize(s string) (string, error) {
	addr, err := Parse(s)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// FormatFull 将地址格式化为完整长度表示。
// IPv4: 每段 3 位十进制，带前导零（"192.168.1.1" → "192.168.001.001"）。
// IPv6: 32 字符十六进制，无分隔符（"::1" → "000...001"）。
// IPv4-mapped IPv6 地址按内嵌的 IPv4 格式化。无效地址返回空字符串。
//
// 完整长度形式按字典序比较与按地址大小比较一致，适合排序键。
func FormatFull(addr netip.Addr) string {
	if !addr.IsValid() {
		return ""
	}
	if addr.Is4() || addr.Is4In6() {
		b := addr.Unmap().As4()
		// 手写格式化避免 fmt.Sprintf 的反射开销和额外分配。
		var buf [15]byte // "xxx.xxx.xxx.xxx"
		for i := 0; i < 4; i++ {
			off := i * 4
			if i > 0 {
				buf[off-1] = '.'
			}
			buf[off+0] = '0' + b[i]/100
			buf[off+1] = '0' + (b[i]/10)%10
			buf[off+2] = '0' + b[i]%10
		}
		return string(buf[:])
	}
	b := addr.As16()
	return hex.EncodeToString(b[:])
}

// ParseFull 解析 [FormatFull] 产出的完整长度形式。
// 同时接受标准形式作为回退（回退路径与 [Parse] 同样严格）。
func ParseFull(s string) (netip.Addr, error) {
	// IPv6 全长形式：32 个十六进制字符，无分隔符
	if len(s) == 32 && !strings.Contains(s, ".") && !strings.Contains(s, ":") {
		b, err := hex.DecodeString(s)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: invalid hex in %q", ErrMalformed, s)
		}
		var arr [16]byte
		copy(arr[:], b)
		return netip.AddrFrom16(arr), nil
	}
	// IPv4 带前导零形式由 Parse 直接覆盖（接受非规范八位组），
	// 其余输入也走同一严格路径。
	return Parse(s)
}
