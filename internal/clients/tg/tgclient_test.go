package tg

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-analyzer/internal/model/messages"
)

func Test_OnSplitMessage_ShortTextShouldStayWhole(t *testing.T) {
	assert.Equal(t, []string{"hello"}, splitMessage("hello", 10))
}

func Test_OnSplitMessage_ShouldPreferLineBreaks(t *testing.T) {
	chunks := splitMessage("aaaa\nbbbb\ncccc", 10)

	assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc"}, chunks)
}

func Test_OnSplitMessage_LongLineShouldBeCutAtLimit(t *testing.T) {
	text := strings.Repeat("я", 25)

	chunks := splitMessage(text, 10)

	assert.Equal(t, []string{strings.Repeat("я", 10), strings.Repeat("я", 10), strings.Repeat("я", 5)}, chunks)
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func Test_OnAllowed(t *testing.T) {
	assert.True(t, allowed(0, 42))
	assert.True(t, allowed(42, 42))
	assert.False(t, allowed(42, 7))
}

func Test_OnIncomingMessage(t *testing.T) {
	textFrom := func(id int64) tgbotapi.Update {
		return tgbotapi.Update{Message: &tgbotapi.Message{
			Text: "/list",
			From: &tgbotapi.User{ID: id, UserName: "someone"},
		}}
	}

	tests := []struct {
		name   string
		owner  int64
		update tgbotapi.Update
		want   messages.Message
		ok     bool
	}{
		{"no message", 42, tgbotapi.Update{}, messages.Message{}, false},
		{"no sender", 42, tgbotapi.Update{Message: &tgbotapi.Message{Text: "/list"}}, messages.Message{}, false},
		{"foreign user", 42, textFrom(7), messages.Message{}, false},
		{"owner", 42, textFrom(42), messages.Message{Text: "/list", UserID: 42}, true},
		{"no owner set", 0, textFrom(7), messages.Message{Text: "/list", UserID: 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := incomingMessage(tt.owner, tt.update)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}
