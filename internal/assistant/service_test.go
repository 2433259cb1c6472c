package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jarvish-app/jarvish/internal/assistant"
	"github.com/jarvish-app/jarvish/internal/message"
	"github.com/jarvish-app/jarvish/internal/provider"
	"github.com/jarvish-app/jarvish/internal/settlement"
	"github.com/jarvish-app/jarvish/internal/task"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

type serviceMocks struct {
	tasks    *assistant.MockTasks
	settler  *assistant.MockSettler
	ledger   *assistant.MockLedger
	messages *assistant.MockMessages
}

func newServiceMocks(ctrl *gomock.Controller) serviceMocks {
	return serviceMocks{
		tasks:    assistant.NewMockTasks(ctrl),
		settler:  assistant.NewMockSettler(ctrl),
		ledger:   assistant.NewMockLedger(ctrl),
		messages: assistant.NewMockMessages(ctrl),
	}
}

// expectTranscript sets up the two Append calls every processed message
// produces: the user's text and the assistant's reply.
func expectTranscript(m serviceMocks) {
	m.messages.EXPECT().
		Append(gomock.Any(), int64(1), message.RoleUser, gomock.Any()).
		Return(&message.Message{ID: 1}, nil)
	m.messages.EXPECT().
		Append(gomock.Any(), int64(1), message.RoleAssistant, gomock.Any()).
		Return(&message.Message{ID: 2}, nil)
}

func TestService_Process_Wallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.ledger.EXPECT().
		Balance(gomock.Any(), int64(1)).
		Return(decimal.RequireFromString("249.50"), nil)
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

	reply, err := svc.Process(context.Background(), 1, "What's my wallet balance?")

	require.NoError(t, err)
	assert.Contains(t, reply.Message, "$249.50")
	assert.Nil(t, reply.Task)
}

func TestService_Process_FoodOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tasks.EXPECT().
		Create(gomock.Any(), int64(1), task.StatusPending, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, status task.Status, p task.Payload) (*task.Task, error) {
			order, ok := p.(*task.FoodOrder)
			require.True(t, ok)
			assert.Equal(t, "Pizza Express", order.Restaurant)
			assert.InDelta(t, 21.98, order.Total, 0.001)

			return &task.Task{ID: 5, UserID: userID, Type: task.TypeFood, Status: status, Payload: p}, nil
		})
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

	reply, err := svc.Process(context.Background(), 1, "I'm hungry, order a pizza")

	require.NoError(t, err)
	require.NotNil(t, reply.Task)
	assert.Equal(t, task.StatusPending, reply.Task.Status)
	assert.Contains(t, reply.Message, "Pizza Express")
}

func TestService_Process_TrainBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tasks.EXPECT().
		Create(gomock.Any(), int64(1), task.StatusPending, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, status task.Status, p task.Payload) (*task.Task, error) {
			ticket, ok := p.(*task.TrainTicket)
			require.True(t, ok)
			assert.NotEmpty(t, ticket.PNR)
			assert.Greater(t, ticket.Price, 0.0)

			return &task.Task{ID: 6, UserID: userID, Type: task.TypeTrain, Status: status, Payload: p}, nil
		})
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

	reply, err := svc.Process(context.Background(), 1, "Book a train from Delhi to Mumbai")

	require.NoError(t, err)
	assert.Contains(t, reply.Message, "train")
}

func TestService_Process_MovieBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tasks.EXPECT().
		Create(gomock.Any(), int64(1), task.StatusSelect, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, status task.Status, p task.Payload) (*task.Task, error) {
			booking, ok := p.(*task.TicketBooking)
			require.True(t, ok)
			assert.Equal(t, "Dune", booking.Options.Movie)

			return &task.Task{ID: 7, UserID: userID, Type: task.TypeTicket, Status: status, Payload: p}, nil
		})
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

	reply, err := svc.Process(context.Background(), 1, "Book movie tickets for Dune")

	require.NoError(t, err)
	require.NotNil(t, reply.Task)
	assert.Equal(t, task.StatusSelect, reply.Task.Status)
}

func TestService_Process_Music(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	videos := provider.NewMockVideoSearch(ctrl)

	videos.EXPECT().
		Search(gomock.Any(), "shape of you song", 3).
		Return([]provider.Video{
			{VideoID: "abc123", Title: "Shape of You", ChannelTitle: "Ed Sheeran"},
			{VideoID: "def456", Title: "Shape of You (Live)"},
		}, nil)
	m.tasks.EXPECT().
		Create(gomock.Any(), int64(1), task.StatusDisplay, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, status task.Status, p task.Payload) (*task.Task, error) {
			search, ok := p.(*task.VideoSearch)
			require.True(t, ok)
			assert.Len(t, search.Videos, 2)
			require.NotNil(t, search.SelectedVideo)
			assert.Equal(t, "abc123", search.SelectedVideo.VideoID)

			return &task.Task{ID: 8, UserID: userID, Type: task.TypeVideo, Status: status, Payload: p}, nil
		})
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{Videos: videos})

	reply, err := svc.Process(context.Background(), 1, "Play shape of you song")

	require.NoError(t, err)
	assert.Contains(t, reply.Message, `"shape of you"`)
}

// Provider failures degrade to an apology instead of failing the request.
func TestService_Process_MusicProviderDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	videos := provider.NewMockVideoSearch(ctrl)

	videos.EXPECT().
		Search(gomock.Any(), gomock.Any(), 3).
		Return(nil, errors.New("quota exceeded"))
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{Videos: videos})

	reply, err := svc.Process(context.Background(), 1, "Play shape of you song")

	require.NoError(t, err)
	assert.Contains(t, reply.Message, "trouble")
	assert.Nil(t, reply.Task)
}

func TestService_Process_WeatherNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	weather := provider.NewMockWeather(ctrl)

	weather.EXPECT().
		Current(gomock.Any(), "london").
		Return(nil, provider.ErrNotConfigured)
	expectTranscript(m)

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{Weather: weather})

	reply, err := svc.Process(context.Background(), 1, "What's the weather in London?")

	require.NoError(t, err)
	assert.Contains(t, reply.Message, "isn't configured")
}

func TestService_Process_ConfirmOrder(t *testing.T) {
	pendingFood := &task.Task{
		ID:     9,
		UserID: 1,
		Type:   task.TypeFood,
		Status: task.StatusPending,
		Payload: &task.FoodOrder{
			ID: "food-abc", Type: task.TypeFood, Status: task.StatusPending,
			Restaurant: "Pizza Express", Total: 21.98,
		},
	}

	t.Run("SettlesPendingOrder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tasks.EXPECT().
			List(gomock.Any(), int64(1)).
			Return([]*task.Task{pendingFood}, nil)
		m.settler.EXPECT().
			Confirm(gomock.Any(), int64(1), task.Ref{ID: 9}, false).
			Return(&settlement.Confirmation{
				Task:        pendingFood,
				Transaction: &wallet.Transaction{ID: 30, UserID: 1},
				Message:     "Your food order from Pizza Express has been confirmed and will be delivered in 25-35 min.",
			}, nil)
		expectTranscript(m)

		svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

		reply, err := svc.Process(context.Background(), 1, "Confirm my order")

		require.NoError(t, err)
		assert.Contains(t, reply.Message, "confirmed")
		require.NotNil(t, reply.Transaction)
		assert.Equal(t, int64(30), reply.Transaction.ID)
	})

	t.Run("NothingPending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tasks.EXPECT().
			List(gomock.Any(), int64(1)).
			Return([]*task.Task{}, nil)
		expectTranscript(m)

		svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

		reply, err := svc.Process(context.Background(), 1, "Confirm my order")

		require.NoError(t, err)
		assert.Contains(t, reply.Message, "pending food orders")
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tasks.EXPECT().
			List(gomock.Any(), int64(1)).
			Return([]*task.Task{pendingFood}, nil)
		m.settler.EXPECT().
			Confirm(gomock.Any(), int64(1), task.Ref{ID: 9}, false).
			Return(nil, wallet.ErrInsufficientFunds)
		expectTranscript(m)

		svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

		reply, err := svc.Process(context.Background(), 1, "Confirm my order")

		require.NoError(t, err)
		assert.Contains(t, reply.Message, "enough funds")
	})
}

func TestService_Process_Chat(t *testing.T) {
	t.Run("ProviderReply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		chat := provider.NewMockChat(ctrl)

		chat.EXPECT().
			Reply(gomock.Any(), gomock.Any()).
			Return("Good evening! My day was great, thanks for asking.", nil)
		expectTranscript(m)

		svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{Chat: chat})

		reply, err := svc.Process(context.Background(), 1, "Good evening, how was your day?")

		require.NoError(t, err)
		assert.Contains(t, reply.Message, "Good evening")
	})

	t.Run("NotConfiguredFallsBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		chat := provider.NewMockChat(ctrl)

		chat.EXPECT().
			Reply(gomock.Any(), gomock.Any()).
			Return("", provider.ErrNotConfigured)
		expectTranscript(m)

		svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{Chat: chat})

		reply, err := svc.Process(context.Background(), 1, "Good evening, how was your day?")

		require.NoError(t, err)
		assert.Contains(t, reply.Message, "I'm not sure how to help with that")
	})
}

func TestService_Process_TranscriptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.ledger.EXPECT().
		Balance(gomock.Any(), int64(1)).
		Return(decimal.RequireFromString("10"), nil)
	m.messages.EXPECT().
		Append(gomock.Any(), int64(1), message.RoleUser, gomock.Any()).
		Return(nil, errors.New("db down"))

	svc := assistant.NewService(m.tasks, m.settler, m.ledger, m.messages, assistant.Providers{})

	_, err := svc.Process(context.Background(), 1, "Show my wallet balance")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording user message")
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		wantIntent string
		wantEntity map[string]string
	}{
		{
			name:       "OrderFood",
			command:    "Order a pizza for dinner",
			wantIntent: "order_food",
			wantEntity: map[string]string{"foodType": "pizza"},
		},
		{
			name:       "BookTicket",
			command:    "Book tickets for Dune",
			wantIntent: "book_ticket",
			wantEntity: map[string]string{"movie": "Dune"},
		},
		{
			name:       "CheckWallet",
			command:    "Check my wallet",
			wantIntent: "check_wallet",
			wantEntity: map[string]string{},
		},
		{
			name:       "GetNews",
			command:    "Read me the sports news",
			wantIntent: "get_news",
			wantEntity: map[string]string{"category": "sports"},
		},
		{
			name:       "Unknown",
			command:    "Sing me a lullaby",
			wantIntent: "unknown",
			wantEntity: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assistant.Interpret(tt.command)

			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.Equal(t, tt.wantEntity, got.Entities)
		})
	}
}

func TestFoodOrderOffer(t *testing.T) {
	order, msg := assistant.FoodOrderOffer("Order a sushi platter")

	assert.Equal(t, task.StatusPending, order.Status)
	assert.Equal(t, "Sushi Palace", order.Restaurant)
	assert.Contains(t, msg, "Sushi Palace")
}

func TestTicketBookingOffer(t *testing.T) {
	booking, msg := assistant.TicketBookingOffer("Book tickets for Dune")

	assert.Equal(t, task.StatusSelect, booking.Status)
	assert.Equal(t, "Dune", booking.Options.Movie)
	assert.Contains(t, msg, "Dune")
}
