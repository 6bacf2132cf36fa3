package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/ChatArchive/internal/archive"
	"github.com/Gopher0727/ChatArchive/internal/models"
)

// CallbackHandler 消息回调处理器
type CallbackHandler struct {
	pipeline *archive.Pipeline
}

// NewCallbackHandler 创建消息回调处理器实例
func NewCallbackHandler(pipeline *archive.Pipeline) *CallbackHandler {
	return &CallbackHandler{
		pipeline: pipeline,
	}
}

// Receive 接收客户端推送的消息回调
// 请求体必须带齐全部字段，缺字段直接 400；
// 不管消息最终是落盘还是被过滤，只要没有存储错误都返回固定的成功应答
func (h *CallbackHandler) Receive(c *gin.Context) {
	var payload models.MsgPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("Receive: JSON binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	msg := payload.ToMsg()
	if _, err := h.pipeline.Handle(c.Request.Context(), &msg); err != nil {
		log.Printf("Receive: pipeline error for roomid %v: %v", msg.RoomID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  0,
		"message": "成功",
	})
}
