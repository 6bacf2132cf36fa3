package archive

import (
	"github.com/Gopher0727/ChatArchive/config"
	"github.com/Gopher0727/ChatArchive/internal/models"
)

// Shape 表示一条记录落盘时的字段形态
type Shape int

const (
	// ShapePlain 四字段形态：type, sender, content, extra
	ShapePlain Shape = iota
	// ShapeTitled 五字段形态：type, sender, title, content, extra
	// 仅用于群聊中的结构化消息（分享的文章、小程序等）
	ShapeTitled
)

// appMessageType 是结构化消息（XML 负载里带 <title>）的类型码
const appMessageType = 49

var (
	headerPlain  = []string{"type", "sender", "content", "extra"}
	headerTitled = []string{"type", "sender", "title", "content", "extra"}
)

// Header 返回指定形态的 CSV 表头
func (s Shape) Header() []string {
	if s == ShapeTitled {
		return headerTitled
	}
	return headerPlain
}

// FieldCount 返回指定形态的字段数
func (s Shape) FieldCount() int {
	return len(s.Header())
}

// Classification 是分类结果
// Eligible 为 false 时消息直接丢弃，其余字段无意义
type Classification struct {
	Eligible bool
	Shape    Shape
	RoomName string
}

// Classify 判断消息是否需要归档以及采用哪种字段形态
// 类型码不在采集范围内、或群聊未配置展示名的消息一律静默丢弃
func Classify(msg *models.Msg, cfg *config.Config) Classification {
	if !cfg.AcceptedType(msg.Type) {
		return Classification{}
	}
	roomName, ok := cfg.RoomName(msg.RoomID)
	if !ok {
		return Classification{}
	}

	shape := ShapePlain
	if msg.Type == appMessageType && msg.IsGroup {
		shape = ShapeTitled
	}

	return Classification{
		Eligible: true,
		Shape:    shape,
		RoomName: roomName,
	}
}
