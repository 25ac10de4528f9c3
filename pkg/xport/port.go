package xport

import "strconv"

// Port 表示经过校验的 16 位端口号（0–65535）。
//
// Port 是不可变值类型：可直接比较（==）和用作 map key，
// 并发安全，无需加锁。类型本身即不变量——任何 Port 值都在范围内，
// 构造入口（[Parse]/[FromInt]/[MustParse]）对越界输入返回错误而非截断或回绕。
type Port uint16

// String 返回端口的十进制字符串表示。
func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// IsUsable 报告 p 是否可直接用于绑定/连接等业务场景。
// 端口 0 是通配端口（绑定时由操作系统分配临时端口），
// 需要调用方显式选择，因此返回 false。
func (p Port) IsUsable() bool {
	return p != 0
}

// Class 表示端口所属的 IANA 层级。
//
// Class 是封闭枚举：区间闭合且连续，每个端口恰好属于三级之一。
type Class uint8

const (
	// System 表示系统端口（0–1023），传统上需要特权才能绑定。
	System Class = iota
	// User 表示用户端口（1024–49151），IANA 注册端口区间。
	User
	// Dynamic 表示动态/私有端口（49152–65535），临时端口分配区间。
	Dynamic
)

// String 返回层级的小写标签。
// 未知值返回 "invalid"。
func (c Class) String() string {
	switch c {
	case System:
		return "system"
	case User:
		return "user"
	case Dynamic:
		return "dynamic"
	default:
		return "invalid"
	}
}

// Classify 返回端口 p 所属层级。
// 纯全函数：任何 Port 值恰好命中一个层级，永不失败，结果不被存储。
func Classify(p Port) Class {
	switch {
	case p <= 1023:
		return System
	case p <= 49151:
		return User
	default:
		return Dynamic
	}
}
