package models

// MsgPayload 回调请求体，绑定时校验所有字段都出现
// 用指针承接是为了区分"字段缺失"和"取值为零"：空串、0 和 false
// 都是合法取值，只有缺字段才拒绝
type MsgPayload struct {
	ID      *uint64 `json:"id" binding:"required"`
	Ts      *int64  `json:"ts" binding:"required"`
	Sign    *string `json:"sign" binding:"required"`
	Type    *int    `json:"type" binding:"required"`
	XML     *string `json:"xml" binding:"required"`
	Sender  *string `json:"sender" binding:"required"`
	RoomID  *string `json:"roomid" binding:"required"`
	Content *string `json:"content" binding:"required"`
	Thumb   *string `json:"thumb" binding:"required"`
	Extra   *string `json:"extra" binding:"required"`
	IsAt    *bool   `json:"is_at" binding:"required"`
	IsSelf  *bool   `json:"is_self" binding:"required"`
	IsGroup *bool   `json:"is_group" binding:"required"`
}

// ToMsg 把校验过的请求体转成不可变的领域消息
func (p *MsgPayload) ToMsg() Msg {
	return Msg{
		ID:      *p.ID,
		Ts:      *p.Ts,
		Sign:    *p.Sign,
		Type:    *p.Type,
		XML:     *p.XML,
		Sender:  *p.Sender,
		RoomID:  *p.RoomID,
		Content: *p.Content,
		Thumb:   *p.Thumb,
		Extra:   *p.Extra,
		IsAt:    *p.IsAt,
		IsSelf:  *p.IsSelf,
		IsGroup: *p.IsGroup,
	}
}

// Msg 回调推送的单条聊天消息
// 字段与客户端回调的 JSON 负载一一对应，接收后不再修改
type Msg struct {
	ID      uint64 `json:"id"`
	Ts      int64  `json:"ts"`
	Sign    string `json:"sign"`
	Type    int    `json:"type"`
	XML     string `json:"xml"`
	Sender  string `json:"sender"`
	RoomID  string `json:"roomid"`
	Content string `json:"content"`
	Thumb   string `json:"thumb"`
	Extra   string `json:"extra"`
	IsAt    bool   `json:"is_at"`
	IsSelf  bool   `json:"is_self"`
	IsGroup bool   `json:"is_group"`
}
