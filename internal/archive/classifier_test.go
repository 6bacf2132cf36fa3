package archive

import (
	"testing"

	"github.com/Gopher0727/ChatArchive/config"
	"github.com/Gopher0727/ChatArchive/internal/models"
)

func testConfig() *config.Config {
	return config.NewConfig(config.ArchiveConfig{
		AcceptedTypes: []int{1, 3, 49},
		ChatroomIDToName: map[string]string{
			"12345678@chatroom": "产品讨论群",
			"87654321@chatroom": "Team A",
		},
	})
}

func TestClassify(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		msg      models.Msg
		eligible bool
		shape    Shape
		roomName string
	}{
		{
			name:     "accepted text message in mapped room",
			msg:      models.Msg{Type: 1, RoomID: "12345678@chatroom", IsGroup: true},
			eligible: true,
			shape:    ShapePlain,
			roomName: "产品讨论群",
		},
		{
			name:     "app message in group gets titled shape",
			msg:      models.Msg{Type: 49, RoomID: "87654321@chatroom", IsGroup: true},
			eligible: true,
			shape:    ShapeTitled,
			roomName: "Team A",
		},
		{
			name:     "app message outside group stays plain",
			msg:      models.Msg{Type: 49, RoomID: "87654321@chatroom", IsGroup: false},
			eligible: true,
			shape:    ShapePlain,
			roomName: "Team A",
		},
		{
			name:     "type not accepted",
			msg:      models.Msg{Type: 47, RoomID: "12345678@chatroom", IsGroup: true},
			eligible: false,
		},
		{
			name:     "room not mapped",
			msg:      models.Msg{Type: 1, RoomID: "unknown@chatroom", IsGroup: true},
			eligible: false,
		},
		{
			name:     "negative type code",
			msg:      models.Msg{Type: -1, RoomID: "12345678@chatroom"},
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.msg, cfg)
			if got.Eligible != tt.eligible {
				t.Fatalf("Eligible = %v, want %v", got.Eligible, tt.eligible)
			}
			if !tt.eligible {
				return
			}
			if got.Shape != tt.shape {
				t.Errorf("Shape = %v, want %v", got.Shape, tt.shape)
			}
			if got.RoomName != tt.roomName {
				t.Errorf("RoomName = %q, want %q", got.RoomName, tt.roomName)
			}
		})
	}
}

func TestShapeHeader(t *testing.T) {
	if got := ShapePlain.FieldCount(); got != 4 {
		t.Errorf("ShapePlain.FieldCount() = %d, want 4", got)
	}
	if got := ShapeTitled.FieldCount(); got != 5 {
		t.Errorf("ShapeTitled.FieldCount() = %d, want 5", got)
	}

	want := []string{"type", "sender", "title", "content", "extra"}
	got := ShapeTitled.Header()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ShapeTitled.Header()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
