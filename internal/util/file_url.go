package util

import (
	"file-storage-server/config"
	"fmt"
	"net/url"
	"strings"
)

// ConstructFileURL : публичная ссылка на просмотр объекта бакета
func ConstructFileURL(cfg *config.PlatformConfig, bucketFileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		strings.TrimRight(cfg.Endpoint, "/"),
		url.PathEscape(cfg.BucketID),
		url.PathEscape(bucketFileID),
		url.QueryEscape(cfg.ProjectID),
	)
}
