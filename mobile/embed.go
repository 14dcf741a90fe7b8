//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/startrail.yaml 是 data/startrail.yaml 的副本，修改默认配置后需要同步：
//
//	mkdir -p mobile/data && cp data/startrail.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/startrail.yaml
var dataFS embed.FS
