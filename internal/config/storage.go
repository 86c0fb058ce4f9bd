package config

import (
	"os"
	"sync"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type StorageConfig struct {
	Driver       string
	UploadDir    string
	S3Endpoint   string
	S3Bucket     string
	S3Region     string
	S3AccessKey  string
	S3SecretKey  string
	S3PathStyle  bool
	S3KeyPrefix  string
	MaxUploadMiB int
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			Driver:       getEnv("STORAGE_DRIVER", StorageLocal),
			UploadDir:    getEnv("UPLOAD_DIR", "uploads/resumes"),
			S3Endpoint:   os.Getenv("S3_ENDPOINT"),
			S3Bucket:     os.Getenv("S3_BUCKET_NAME"),
			S3Region:     getEnv("AWS_REGION", "us-east-1"),
			S3AccessKey:  os.Getenv("AWS_ACCESS_KEY_ID"),
			S3SecretKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
			S3PathStyle:  os.Getenv("S3_USE_PATH_STYLE") == "true",
			S3KeyPrefix:  getEnv("S3_KEY_PREFIX", "resumes/"),
			MaxUploadMiB: getEnvAsInt("MAX_UPLOAD_MIB", 10),
		}
	})
	return storageConfig
}
