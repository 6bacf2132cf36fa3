package archive

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Gopher0727/ChatArchive/internal/models"
)

func TestProperty_ClassifyShapeSelection(t *testing.T) {
	cfg := testConfig()
	properties := gopter.NewProperties(nil)

	properties.Property("titled shape only for type 49 group messages", prop.ForAll(
		func(msgType int, isGroup bool) bool {
			msg := &models.Msg{
				Type:    msgType,
				RoomID:  "12345678@chatroom",
				IsGroup: isGroup,
			}
			cls := Classify(msg, cfg)
			if !cls.Eligible {
				// 不在采集范围内的类型不会分配形态
				return msgType != 1 && msgType != 3 && msgType != 49
			}
			wantTitled := msgType == 49 && isGroup
			return (cls.Shape == ShapeTitled) == wantTitled
		},
		gen.IntRange(0, 100),
		gen.Bool(),
	))

	properties.Property("unmapped rooms are never eligible", prop.ForAll(
		func(msgType int, roomID string) bool {
			msg := &models.Msg{Type: msgType, RoomID: roomID, IsGroup: true}
			cls := Classify(msg, cfg)
			_, mapped := cfg.RoomName(roomID)
			if !mapped {
				return !cls.Eligible
			}
			return true
		},
		gen.IntRange(0, 100),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
