package archive

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/twmb/murmur3"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8SIG = "utf-8-sig"
	EncodingGBK     = "gbk"
)

// lockStripes 必须是 2 的幂
const lockStripes = 64

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RecordWriter 向目标 CSV 文件追加记录
//
// 文件为空时先写表头再写数据行。操作系统的 O_APPEND 只保证单次
// write 不被截断，不保证"表头+数据"两次写之间无人插队，所以同一
// 路径的并发追加用分段互斥锁串行化，锁段由路径的 murmur3 哈希选出
type RecordWriter struct {
	encoding string
	truncate bool
	locks    [lockStripes]sync.Mutex
}

// NewRecordWriter 创建写入器
// writeMode 为 "a" 时追加，为 "w" 时每次写前清空文件（对齐原始服务的行为）
func NewRecordWriter(encoding, writeMode string) *RecordWriter {
	return &RecordWriter{
		encoding: encoding,
		truncate: writeMode == "w",
	}
}

// Append 追加一行记录，必要时先写表头
// 返回前完成 fsync，调用方收到 nil 即代表数据已落盘
func (w *RecordWriter) Append(path string, header, row []string) error {
	lock := &w.locks[murmur3.StringSum32(path)%lockStripes]
	lock.Lock()
	defer lock.Unlock()

	flags := os.O_WRONLY | os.O_CREATE
	if w.truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("打开 %s 失败: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("获取 %s 状态失败: %w", path, err)
	}
	empty := info.Size() == 0

	var out io.Writer = f
	var tw *transform.Writer

	switch w.encoding {
	case EncodingUTF8, "":
	case EncodingUTF8SIG:
		if empty {
			if _, err := f.Write(utf8BOM); err != nil {
				return fmt.Errorf("写入 BOM 失败: %w", err)
			}
		}
	case EncodingGBK:
		tw = transform.NewWriter(f, simplifiedchinese.GBK.NewEncoder())
		out = tw
	default:
		return fmt.Errorf("不支持的输出编码: %s", w.encoding)
	}

	cw := csv.NewWriter(out)
	if empty {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("写入表头失败: %w", err)
		}
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("写入记录失败: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("编码转换失败: %w", err)
		}
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("同步 %s 失败: %w", path, err)
	}
	return nil
}
