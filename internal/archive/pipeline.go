package archive

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Gopher0727/ChatArchive/config"
	"github.com/Gopher0727/ChatArchive/internal/models"
	logger "github.com/Gopher0727/ChatArchive/middleware/log"
)

// Outcome 是单条消息的处理结果
type Outcome int

const (
	// OutcomeSkipped 消息不在采集范围内，没有任何写入
	OutcomeSkipped Outcome = iota
	// OutcomePersisted 记录已落盘
	OutcomePersisted
	// OutcomeFailed 存储失败，错误随返回值上抛
	OutcomeFailed
)

// Pipeline 将分类、标题提取、路径推导和写入串起来处理单条消息
type Pipeline struct {
	cfg      *config.Config
	resolver *PathResolver
	writer   *RecordWriter
	log      *logger.Logger
	now      func() time.Time
}

// NewPipeline 创建消息归档流水线
func NewPipeline(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		resolver: NewPathResolver(cfg.Archive.BaseDir, cfg.Archive.DateFormat),
		writer:   NewRecordWriter(cfg.Archive.FileEncoding, cfg.Archive.FileWriteMode),
		log:      log,
		now:      time.Now,
	}
}

// Handle 处理一条入站消息
// 不符合采集条件返回 Skipped；写入失败返回 Failed 和底层错误，
// 由 HTTP 层转成 500；成功返回 Persisted
// ctx 里带 trace_id 时会一并打进日志
func (p *Pipeline) Handle(ctx context.Context, msg *models.Msg) (Outcome, error) {
	cls := Classify(msg, p.cfg)
	if !cls.Eligible {
		return OutcomeSkipped, nil
	}

	row := buildRow(msg, cls.Shape)

	_, filePath, err := p.resolver.Resolve(cls.RoomName, p.now())
	if err != nil {
		p.logFailed(ctx, cls.RoomName, msg, err)
		return OutcomeFailed, err
	}

	if err := p.writer.Append(filePath, cls.Shape.Header(), row); err != nil {
		p.logFailed(ctx, cls.RoomName, msg, err)
		return OutcomeFailed, err
	}

	p.log.InfoContext(ctx, "消息已保存",
		zap.String("room", cls.RoomName),
		zap.Int("type", msg.Type),
		zap.String("content", msg.Content),
	)
	return OutcomePersisted, nil
}

// buildRow 按形态组装一行记录
// 五字段形态的展示位优先用提取出的标题，提取结果为空时退回原始内容
func buildRow(msg *models.Msg, shape Shape) []string {
	typeField := strconv.Itoa(msg.Type)
	if shape == ShapeTitled {
		display := ExtractTitle(msg.Content)
		if display == "" {
			display = msg.Content
		}
		return []string{typeField, msg.Sender, display, msg.Content, msg.Extra}
	}
	return []string{typeField, msg.Sender, msg.Content, msg.Extra}
}

func (p *Pipeline) logFailed(ctx context.Context, roomName string, msg *models.Msg, err error) {
	p.log.ErrorContext(ctx, "消息保存失败",
		zap.String("room", roomName),
		zap.Int("type", msg.Type),
		zap.String("content", msg.Content),
		zap.Error(err),
	)
}
