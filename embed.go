package main

import "embed"

// dataFS 嵌入的数值配置目录
//
//go:embed data/zombie_rush.yaml
var dataFS embed.FS
