package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// ModelVersion 规则引擎版本号，写入计划元数据
const ModelVersion = "v1.0.0-rules"

const (
	DefaultEventLimit   = 20
	DefaultHistoryLimit = 10
	MaxListLimit        = 100
)
