// Package xip 提供 IP 地址的纯解析与语义分类。
//
// xip 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 直接使用 [netip.Addr] 作为地址值类型，在其上提供严格的字面量解析、
// 五类互斥的语义分类，以及分类定义区间的集合化表示。
//
// # 核心功能
//
//   - parse.go: 严格字面量解析 [Parse] / [MustParse] / [IsValid]，
//     区分空输入、语法错误与八位组越界三种错误
//   - class.go / classify.go: 分类枚举 [Class] 与全函数 [Classify]，
//     以及 IsLoopback / IsPrivate 等包级谓词
//   - ranges.go: 各分类的定义前缀与区间 [PrefixesOf] / [RangesOf] / [SetOf]
//   - version.go: IP 版本类型 [Version] 及 [AddrVersion]
//   - format.go: 规范化 [Normalize]、全长格式化 [FormatFull] / [ParseFull]
//   - convert.go: uint32 与 [netip.Addr] 互转、IPv4/IPv6 映射转换
//
// # 快速示例
//
//	addr, err := xip.Parse("192.168.1.1")
//	if err != nil {
//	    // errors.Is(err, xip.ErrMalformed) / xip.ErrOutOfRange / xip.ErrEmpty
//	}
//	fmt.Println(xip.Classify(addr)) // private
//
// # 分类语义
//
// 每个有效地址恰好属于五类之一，按优先级判定：
//
//	Unspecified → Loopback → Multicast → Private → Global
//
// 更特殊的分类优先，首条命中即返回，分类永不失败。
// 分类是纯函数：不读取任何进程级状态，相同输入必得相同结果，
// 结果从不存储在地址值上。
//
// # 纯函数保证
//
// 本包不做 DNS 解析、不做任何网络或系统调用、不持有可变状态。
// 所有函数可被任意数量的 goroutine 无同步并发调用；
// 最坏情况是一次有界的字符串扫描，不存在阻塞或无界分配。
// OS 级的 bind/connect 探测被隔离在 [github.com/omeyang/netsem/pkg/xprobe]
// 的接口边界之后，本包与其无依赖关系。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xip.Parse("256.1.1.1")
//	if errors.Is(err, xip.ErrOutOfRange) {
//	    // 八位组越界
//	}
//
// 解析失败同步报告给直接调用方，本包不记录日志、不重试、不静默降级。
package xip
