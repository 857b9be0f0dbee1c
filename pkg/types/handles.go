package types

// SoundHandle 音效资源句柄（resources.yaml 中的资源ID）
// 模拟核心只保存和复制句柄，不解析其内容
type SoundHandle string

// ModelHandle 模型资源句柄
type ModelHandle string
