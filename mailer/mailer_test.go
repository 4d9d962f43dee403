package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendWithoutHost(t *testing.T) {
	m := &Mailer{}
	assert.False(t, m.Enabled())
	assert.ErrorIs(t, m.Send("x@example.com", "s", "b"), ErrNotConfigured)
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("me@example.com", "you@example.com", "Re: Hi", "hello"))

	assert.Contains(t, msg, "From: me@example.com\r\n")
	assert.Contains(t, msg, "To: you@example.com\r\n")
	assert.Contains(t, msg, "Subject: Re: Hi\r\n")
	assert.Contains(t, msg, "\r\n\r\nhello\r\n")
}
