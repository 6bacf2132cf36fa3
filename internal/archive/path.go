package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// dayLayout 是目录名使用的日期格式，固定按天分目录
const dayLayout = "20060102"

// PathResolver 根据群聊名和消息到达时间推导落盘路径
// 目录按天分、文件按小时分；同一条消息只采样一次时间，
// 避免跨小时/跨天瞬间目录和文件名对不上
type PathResolver struct {
	BaseDir    string
	DateFormat string
}

// NewPathResolver 创建路径推导器，DateFormat 控制文件名里的时间桶
func NewPathResolver(baseDir, dateFormat string) *PathResolver {
	if dateFormat == "" {
		dateFormat = "2006010215"
	}
	return &PathResolver{BaseDir: baseDir, DateFormat: dateFormat}
}

// Resolve 推导并确保目录存在，返回目录和文件的完整路径
// 目录创建是幂等的，已存在不报错，多个请求并发创建也安全
func (r *PathResolver) Resolve(roomName string, now time.Time) (dirPath, filePath string, err error) {
	dirPath = filepath.Join(r.BaseDir, roomName, now.Format(dayLayout))
	filePath = filepath.Join(dirPath, fmt.Sprintf("messages_%s.csv", now.Format(r.DateFormat)))

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", "", fmt.Errorf("创建目录 %s 失败: %w", dirPath, err)
	}
	return dirPath, filePath, nil
}
