package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectWithThread(t *testing.T) {
	assert.Equal(t, "Re: Hello [thread_1_abc]", SubjectWithThread("Re: Hello", "thread_1_abc"))

	// already tagged subjects are left alone
	assert.Equal(t, "Re: Hello [thread_1_abc]", SubjectWithThread("Re: Hello [thread_1_abc]", "thread_1_abc"))

	// no thread id, no token
	assert.Equal(t, "Re: Hello", SubjectWithThread("Re: Hello", ""))
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("owner@example.com", Email{
		To:       "visitor@example.com",
		Subject:  "Re: Hello",
		Body:     "Thanks for writing.",
		ThreadID: "thread_1_abc",
	})

	assert.Contains(t, msg, "From: owner@example.com\r\n")
	assert.Contains(t, msg, "To: visitor@example.com\r\n")
	assert.Contains(t, msg, "Subject: Re: Hello [thread_1_abc]\r\n")
	assert.Contains(t, msg, "X-Thread-ID: thread_1_abc\r\n")

	headerEnd := strings.Index(msg, "\r\n\r\n")
	assert.Greater(t, headerEnd, 0)
	assert.Contains(t, msg[headerEnd:], "Thanks for writing.")
}

func TestBuildMessage_NoThreadHeader(t *testing.T) {
	msg := buildMessage("owner@example.com", Email{
		To:      "visitor@example.com",
		Subject: "Plain",
		Body:    "No thread.",
	})

	assert.NotContains(t, msg, "X-Thread-ID")
	assert.Contains(t, msg, "Subject: Plain\r\n")
}

func TestNoopSender_AlwaysSucceeds(t *testing.T) {
	sender := NewNoopSender(nil)
	err := sender.Send(context.Background(), Email{To: "anyone@example.com"})
	assert.NoError(t, err)
}
