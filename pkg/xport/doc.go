// Package xport 提供端口号的纯解析与层级分类。
//
// xport 以 [Port]（uint16 值类型）承载校验后的端口号，提供严格的
// 十进制解析与 IANA 三级分类：
//
//	System (0–1023) → User (1024–49151) → Dynamic (49152–65535)
//
// 区间闭合且连续，每个端口恰好属于一级，[Classify] 永不失败。
//
// # 快速示例
//
//	p, err := xport.Parse("8080")
//	if err != nil {
//	    // errors.Is(err, xport.ErrMalformed) / xport.ErrOutOfRange / xport.ErrEmpty
//	}
//	fmt.Println(xport.Classify(p)) // user
//
// # 端口 0 的语义
//
// 端口 0 在 [0, 65535] 范围内，解析成功并分类为 System。
// 但它是通配端口（绑定时由操作系统分配临时端口），
// 业务上是否接受由调用方通过 [Port.IsUsable] 显式判断，
// 解析层不代替调用方做这个决定。
//
// # 纯函数保证
//
// 本包不做任何网络或系统调用、不持有可变状态；
// 所有函数可被任意数量的 goroutine 无同步并发调用。
// 解析失败同步报告给直接调用方，不记录日志、不重试、不静默降级。
package xport
