// Package xwire 提供套接字地址与分类的序列化适配。
//
// 序列化被刻意放在核心之外：xip/xport 的分类枚举不携带任何
// 编码方法，避免把某种线路格式固化进分类类型。需要落盘或传输时，
// 先转换为 [Record]（带 json/bson/yaml 标签的扁平结构），
// 再交给任意编解码器。
//
// 解码方向不信任持久化数据：IP 字段重新经严格校验，
// 分类标签被忽略并从地址位重新计算。
//
// # 快速示例
//
//	rec := xwire.RecordOf(xsock.MustParse("127.0.0.1:8080"))
//	data, _ := json.Marshal(rec)
//	// {"ip":"127.0.0.1","port":8080,"ip_class":"loopback","port_class":"user"}
package xwire
