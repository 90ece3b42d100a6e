package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/repository/memory"
	"github.com/sstlab/vigia/pkg/usecase"
)

type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (m *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	return m.generateContentFn(ctx, input...)
}

func (m *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return m.generateContentFn(ctx, input...)
}

func (m *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (m *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (m *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (m *mockLLMSession) AppendHistory(history *gollem.History) error {
	return nil
}

func (m *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (m *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	return m.newSessionFn(ctx, options...)
}

func (m *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func TestChatFallback(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	t.Run("empty message is rejected", func(t *testing.T) {
		_, err := uc.Assist.Chat(ctx, 0, "   ", nil)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("keyword questions get on-topic replies", func(t *testing.T) {
		reply, err := uc.Assist.Chat(ctx, 0, "How is the risk score calculated?", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(reply, "probability")).True()

		reply, err = uc.Assist.Chat(ctx, 0, "What goes into the PGR report?", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(strings.ToLower(reply), "document")).True()
	})

	t.Run("same question gets the same answer", func(t *testing.T) {
		first, err := uc.Assist.Chat(ctx, 0, "tell me about the inventory", nil)
		gt.NoError(t, err).Required()
		second, err := uc.Assist.Chat(ctx, 0, "tell me about the inventory", nil)
		gt.NoError(t, err).Required()
		gt.Value(t, first).Equal(second)
	})

	t.Run("unknown topics get the generic reply", func(t *testing.T) {
		reply, err := uc.Assist.Chat(ctx, 0, "what is the weather today", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(reply, "rephrase")).True()
	})

	t.Run("history is accepted", func(t *testing.T) {
		history := []model.ChatExchange{
			{Question: "hello", Answer: "Hi!"},
			{Question: "what is an inventory?", Answer: "A versioned hazard list."},
		}
		reply, err := uc.Assist.Chat(ctx, 0, "and how is risk scored?", history)
		gt.NoError(t, err).Required()
		gt.Bool(t, reply != "").True()
	})
}

func TestChatWithLLM(t *testing.T) {
	ctx := context.Background()
	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{"Crushing is your highest risk."}}, nil
				},
			}, nil
		},
	}
	uc := usecase.New(memory.New(), usecase.WithLLM(client))

	reply, err := uc.Assist.Chat(ctx, 0, "what should I fix first?", nil)
	gt.NoError(t, err).Required()
	gt.Value(t, reply).Equal("Crushing is your highest risk.")
}

func TestChatRecoversFromLLMFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("session creation fails", func(t *testing.T) {
		client := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return nil, errors.New("vertex unavailable")
			},
		}
		uc := usecase.New(memory.New(), usecase.WithLLM(client))

		reply, err := uc.Assist.Chat(ctx, 0, "How is the risk score calculated?", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(reply, "probability")).True()
	})

	t.Run("generation fails", func(t *testing.T) {
		client := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return nil, errors.New("model timeout")
					},
				}, nil
			},
		}
		uc := usecase.New(memory.New(), usecase.WithLLM(client))

		reply, err := uc.Assist.Chat(ctx, 0, "How is the risk score calculated?", nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(reply, "probability")).True()
	})
}
