package xip

// Class 表示 IP 地址的语义分类。
//
// Class 是封闭枚举：每个有效地址恰好属于五类之一，分类之间互斥。
// 零值为 Unspecified，与全零地址（0.0.0.0 / ::）对应。
//
// 设计决策: 使用封闭的 uint8 枚举而非开放接口或布尔标志集合。
// 分类是对有限互斥区间的一次全匹配，不需要动态派发或运行时类型检查；
// 枚举值按判定优先级排列，[Classify] 按此顺序首次命中即返回。
type Class uint8

const (
	// Unspecified 表示全零地址（0.0.0.0 或 ::），即"无特定地址"。
	Unspecified Class = iota

	// Loopback 表示环回地址（127.0.0.0/8 或 ::1），指向本机自身。
	Loopback

	// Multicast 表示多播地址（224.0.0.0/4 或 ff00::/8），指向一组接收者。
	Multicast

	// Private 表示私网地址，不可全球路由：
	// RFC 1918（10.0.0.0/8、172.16.0.0/12、192.168.0.0/16）、
	// 链路本地 169.254.0.0/16、IPv6 ULA fc00::/7、链路本地 fe80::/10。
	Private

	// Global 表示可在公网路由的地址（兜底分类）。
	Global
)

// String 返回分类的小写标签。
// 未知值返回 "invalid"。
func (c Class) String() string {
	switch c {
	case Unspecified:
		return "unspecified"
	case Loopback:
		return "loopback"
	case Multicast:
		return "multicast"
	case Private:
		return "private"
	case Global:
		return "global"
	default:
		return "invalid"
	}
}
