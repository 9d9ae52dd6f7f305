// File: /services/chat_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wanderspot-api/models"
)

type fakeChatRepo struct {
	conversations []models.Conversation
	messages      []models.Message

	failInsert bool
	created    int
}

func (r *fakeChatRepo) LatestConversation(userID string) (*models.Conversation, error) {
	for i := len(r.conversations) - 1; i >= 0; i-- {
		if r.conversations[i].UserID == userID {
			conv := r.conversations[i]
			return &conv, nil
		}
	}
	return nil, nil
}

func (r *fakeChatRepo) CreateConversation(conv *models.Conversation) error {
	for _, existing := range r.conversations {
		if existing.UserID == conv.UserID {
			return errors.New("duplicate key")
		}
	}
	r.created++
	r.conversations = append(r.conversations, *conv)
	return nil
}

func (r *fakeChatRepo) ListMessages(conversationID string) ([]models.Message, error) {
	out := make([]models.Message, 0)
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) InsertMessage(msg *models.Message) error {
	if r.failInsert {
		return errors.New("insert failed")
	}
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeChatRepo) DeleteMessages(conversationID string) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.ConversationID != conversationID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

type fakeGenerator struct {
	reply       string
	err         error
	transcripts [][]models.ChatTurn
}

func (g *fakeGenerator) Reply(ctx context.Context, transcript []models.ChatTurn) (string, error) {
	copied := make([]models.ChatTurn, len(transcript))
	copy(copied, transcript)
	g.transcripts = append(g.transcripts, copied)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestChatResolveCreatesConversationOnce(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "hi"}

	first := NewChatSession(repo, gen)
	if err := first.Resolve("user-1"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second := NewChatSession(repo, gen)
	if err := second.Resolve("user-1"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if repo.created != 1 {
		t.Fatalf("expected one conversation created, got %d", repo.created)
	}
	if first.Conversation().ID != second.Conversation().ID {
		t.Fatal("both sessions should adopt the same conversation")
	}
}

func TestChatSendAppendsUserAssistantPair(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "Try the Philosopher's Path in April."}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	reply, err := session.SendMessage(context.Background(), "Where should I go in Kyoto?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply == nil || reply.Role != models.RoleAssistant {
		t.Fatalf("expected assistant reply, got %+v", reply)
	}

	messages := session.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != models.RoleUser || messages[1].Role != models.RoleAssistant {
		t.Fatalf("unexpected roles: %s, %s", messages[0].Role, messages[1].Role)
	}
	if messages[1].Content != gen.reply {
		t.Fatalf("unexpected reply content: %q", messages[1].Content)
	}
	if len(repo.messages) != 2 {
		t.Fatalf("expected both messages persisted, got %d", len(repo.messages))
	}
}

func TestChatTranscriptOrderAcrossTurns(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	for i, content := range []string{"a", "b", "c"} {
		gen.reply = fmt.Sprintf("reply-%d", i)
		if _, err := session.SendMessage(context.Background(), content); err != nil {
			t.Fatalf("send %q: %v", content, err)
		}
	}

	messages := session.Messages()
	want := []struct {
		role    string
		content string
	}{
		{models.RoleUser, "a"}, {models.RoleAssistant, "reply-0"},
		{models.RoleUser, "b"}, {models.RoleAssistant, "reply-1"},
		{models.RoleUser, "c"}, {models.RoleAssistant, "reply-2"},
	}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(messages))
	}
	for i, w := range want {
		if messages[i].Role != w.role || messages[i].Content != w.content {
			t.Fatalf("message %d: got %s %q, want %s %q", i, messages[i].Role, messages[i].Content, w.role, w.content)
		}
	}

	// The transcript handed to the generator ends with the newest user turn.
	last := gen.transcripts[len(gen.transcripts)-1]
	if len(last) != 5 {
		t.Fatalf("expected 5 turns in final transcript, got %d", len(last))
	}
	if last[4].Role != models.RoleUser || last[4].Content != "c" {
		t.Fatalf("final transcript should end with the user turn, got %s %q", last[4].Role, last[4].Content)
	}
}

func TestChatFailedGenerationRollsBackUserMessage(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{err: errors.New("model unavailable")}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if _, err := session.SendMessage(context.Background(), "hello"); err == nil {
		t.Fatal("expected send error")
	}
	if len(session.Messages()) != 0 {
		t.Fatalf("failed turn should leave no dangling message, got %d", len(session.Messages()))
	}
	if session.Sending() {
		t.Fatal("sending flag should be cleared after failure")
	}

	// A subsequent send succeeds cleanly.
	gen.err = nil
	gen.reply = "recovered"
	if _, err := session.SendMessage(context.Background(), "hello again"); err != nil {
		t.Fatalf("send after failure: %v", err)
	}
	if len(session.Messages()) != 2 {
		t.Fatalf("expected 2 messages after recovery, got %d", len(session.Messages()))
	}
}

func TestChatFailedPersistRollsBackUserMessage(t *testing.T) {
	repo := &fakeChatRepo{failInsert: true}
	gen := &fakeGenerator{reply: "hi"}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if _, err := session.SendMessage(context.Background(), "hello"); err == nil {
		t.Fatal("expected send error")
	}
	if len(session.Messages()) != 0 {
		t.Fatalf("failed persist should leave no dangling message, got %d", len(session.Messages()))
	}
}

func TestChatBlankMessageIsNoOp(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "hi"}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	reply, err := session.SendMessage(context.Background(), "   \n\t ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != nil {
		t.Fatal("blank message should not produce a reply")
	}
	if len(gen.transcripts) != 0 {
		t.Fatal("blank message should not reach the generator")
	}
}

func TestChatSendWithoutConversation(t *testing.T) {
	session := NewChatSession(&fakeChatRepo{}, &fakeGenerator{})
	if _, err := session.SendMessage(context.Background(), "hello"); !errors.Is(err, ErrNoConversation) {
		t.Fatalf("expected ErrNoConversation, got %v", err)
	}
}

func TestChatClearChat(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "hi"}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := session.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := session.ClearChat(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(session.Messages()) != 0 {
		t.Fatal("transcript should be empty after clear")
	}
	if len(repo.messages) != 0 {
		t.Fatal("persisted messages should be deleted after clear")
	}
	if session.Conversation() == nil {
		t.Fatal("conversation itself survives a clear")
	}

	// The cleared conversation accepts new messages.
	if _, err := session.SendMessage(context.Background(), "fresh start"); err != nil {
		t.Fatalf("send after clear: %v", err)
	}
	if len(session.Messages()) != 2 {
		t.Fatalf("expected 2 messages after clear and send, got %d", len(session.Messages()))
	}
}

type blockingGenerator struct {
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Reply(ctx context.Context, transcript []models.ChatTurn) (string, error) {
	g.entered <- struct{}{}
	<-g.release
	return "blocked reply", nil
}

func TestChatSendWhileSendingIsNoOp(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &blockingGenerator{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	session := NewChatSession(repo, gen)
	if err := session.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	done := make(chan struct{})
	var firstReply *models.Message
	var firstErr error
	go func() {
		firstReply, firstErr = session.SendMessage(context.Background(), "first")
		close(done)
	}()

	<-gen.entered
	if !session.Sending() {
		t.Fatal("sending flag should be set while a turn is in flight")
	}

	reply, err := session.SendMessage(context.Background(), "second")
	if err != nil {
		t.Fatalf("in-flight send should be a quiet no-op, got error: %v", err)
	}
	if reply != nil {
		t.Fatalf("in-flight send should not produce a reply, got %+v", reply)
	}

	close(gen.release)
	<-done

	if firstErr != nil {
		t.Fatalf("first send: %v", firstErr)
	}
	if firstReply == nil || firstReply.Content != "blocked reply" {
		t.Fatalf("unexpected first reply: %+v", firstReply)
	}

	messages := session.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected only the first turn's pair, got %d messages", len(messages))
	}
	for _, m := range messages {
		if m.Content == "second" {
			t.Fatal("the dropped send must not reach the transcript")
		}
	}
}

func TestChatResolveLoadsExistingTranscript(t *testing.T) {
	repo := &fakeChatRepo{}
	gen := &fakeGenerator{reply: "hi"}

	first := NewChatSession(repo, gen)
	if err := first.Resolve("user-1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := first.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	second := NewChatSession(repo, gen)
	if err := second.Resolve("user-1"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if len(second.Messages()) != 2 {
		t.Fatalf("expected persisted transcript to load, got %d messages", len(second.Messages()))
	}
}
