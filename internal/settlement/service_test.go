package settlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jarvish-app/jarvish/internal/settlement"
	"github.com/jarvish-app/jarvish/internal/task"
	"github.com/jarvish-app/jarvish/internal/user"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

func TestTopUpAmount(t *testing.T) {
	tests := []struct {
		name      string
		shortfall string
		want      string
	}{
		{name: "TinyShortfall", shortfall: "0.01", want: "50"},
		{name: "ExactIncrement", shortfall: "50", want: "50"},
		{name: "JustOverIncrement", shortfall: "50.01", want: "100"},
		{name: "MidSecondIncrement", shortfall: "73", want: "100"},
		{name: "ExactMultiple", shortfall: "150", want: "150"},
		{name: "Cents", shortfall: "28.02", want: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shortfall := decimal.RequireFromString(tt.shortfall)
			want := decimal.RequireFromString(tt.want)

			got := settlement.TopUpAmount(shortfall)

			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func pendingFoodTask() *task.Task {
	return &task.Task{
		ID:     7,
		UserID: 1,
		Type:   task.TypeFood,
		Status: task.StatusPending,
		Payload: &task.FoodOrder{
			ID:           "food-abc",
			Type:         task.TypeFood,
			Status:       task.StatusPending,
			Restaurant:   "Pizza Express",
			Total:        21.98,
			DeliveryTime: "25-35 min",
		},
	}
}

func confirmedFoodTask() *task.Task {
	t := pendingFoodTask()
	t.Status = task.StatusConfirmed
	t.Payload.SetStatus(task.StatusConfirmed)

	return t
}

func TestService_Confirm(t *testing.T) {
	type mocks struct {
		ledger *settlement.MockLedger
		tasks  *settlement.MockTasks
		users  *settlement.MockUsers
	}

	type testCase struct {
		name       string
		autoTopUp  bool
		setupMock  func(m mocks)
		wantErr    error
		wantTopUp  bool
		wantAmount string
	}

	tests := []testCase{
		{
			name: "SufficientFunds",
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(pendingFoodTask(), nil)
				m.ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.RequireFromString("100"), nil)
				m.ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Pizza Express", wallet.TypeFood).
					DoAndReturn(func(_ context.Context, userID int64, delta decimal.Decimal, desc string, txType wallet.Type) (decimal.Decimal, *wallet.Transaction, error) {
						assert.True(t, decimal.RequireFromString("-21.98").Equal(delta), "debit must be the exact total, got %s", delta)
						return decimal.RequireFromString("78.02"), &wallet.Transaction{ID: 11, UserID: 1, Amount: delta}, nil
					})
				m.tasks.EXPECT().
					UpdateStatus(gomock.Any(), int64(7), task.StatusConfirmed).
					Return(confirmedFoodTask(), nil)
				m.tasks.EXPECT().
					UpdatePayload(gomock.Any(), int64(7), gomock.Any()).
					Return(nil)
			},
			wantAmount: "78.02",
		},
		{
			name:      "AutoTopUpFromEmptyWallet",
			autoTopUp: true,
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(pendingFoodTask(), nil)
				m.ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.Zero, nil)
				m.users.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&user.User{ID: 1}, nil)
				m.ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Auto Top-up", wallet.TypeTopUp).
					DoAndReturn(func(_ context.Context, userID int64, delta decimal.Decimal, desc string, txType wallet.Type) (decimal.Decimal, *wallet.Transaction, error) {
						assert.True(t, decimal.RequireFromString("50").Equal(delta), "shortfall of 21.98 must top up one 50 increment, got %s", delta)
						return decimal.RequireFromString("50"), &wallet.Transaction{ID: 12, UserID: 1, Amount: delta}, nil
					})
				m.ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Pizza Express", wallet.TypeFood).
					DoAndReturn(func(_ context.Context, userID int64, delta decimal.Decimal, desc string, txType wallet.Type) (decimal.Decimal, *wallet.Transaction, error) {
						assert.True(t, decimal.RequireFromString("-21.98").Equal(delta))
						return decimal.RequireFromString("28.02"), &wallet.Transaction{ID: 13, UserID: 1, Amount: delta}, nil
					})
				m.tasks.EXPECT().
					UpdateStatus(gomock.Any(), int64(7), task.StatusConfirmed).
					Return(confirmedFoodTask(), nil)
				m.tasks.EXPECT().
					UpdatePayload(gomock.Any(), int64(7), gomock.Any()).
					Return(nil)
			},
			wantTopUp:  true,
			wantAmount: "28.02",
		},
		{
			name:      "PreferenceEnablesTopUp",
			autoTopUp: false,
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(pendingFoodTask(), nil)
				m.ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.RequireFromString("10"), nil)
				m.users.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&user.User{ID: 1, Preferences: user.Preferences{AutoPayment: true}}, nil)
				m.ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Auto Top-up", wallet.TypeTopUp).
					Return(decimal.RequireFromString("60"), &wallet.Transaction{ID: 14, UserID: 1}, nil)
				m.ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Pizza Express", wallet.TypeFood).
					Return(decimal.RequireFromString("38.02"), &wallet.Transaction{ID: 15, UserID: 1}, nil)
				m.tasks.EXPECT().
					UpdateStatus(gomock.Any(), int64(7), task.StatusConfirmed).
					Return(confirmedFoodTask(), nil)
				m.tasks.EXPECT().
					UpdatePayload(gomock.Any(), int64(7), gomock.Any()).
					Return(nil)
			},
			wantTopUp:  true,
			wantAmount: "38.02",
		},
		{
			name:      "InsufficientFundsNoTopUp",
			autoTopUp: false,
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(pendingFoodTask(), nil)
				m.ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.RequireFromString("10"), nil)
				m.users.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&user.User{ID: 1}, nil)
			},
			wantErr: wallet.ErrInsufficientFunds,
		},
		{
			name: "AlreadyConfirmed",
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(confirmedFoodTask(), nil)
			},
			wantErr: settlement.ErrNotConfirmable,
		},
		{
			name: "DisplayTaskNotPayable",
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(&task.Task{
						ID:      7,
						UserID:  1,
						Type:    task.TypeWeather,
						Status:  task.StatusDisplay,
						Payload: &task.WeatherReport{ID: "weather-abc", Type: task.TypeWeather},
					}, nil)
			},
			wantErr: settlement.ErrNotPayable,
		},
		{
			name: "ZeroTotalNotPayable",
			setupMock: func(m mocks) {
				zero := pendingFoodTask()
				zero.Payload.(*task.FoodOrder).Total = 0

				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(zero, nil)
			},
			wantErr: settlement.ErrNotPayable,
		},
		{
			name: "TaskNotFound",
			setupMock: func(m mocks) {
				m.tasks.EXPECT().
					Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
					Return(nil, task.ErrNotFound)
			},
			wantErr: task.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				ledger: settlement.NewMockLedger(ctrl),
				tasks:  settlement.NewMockTasks(ctrl),
				users:  settlement.NewMockUsers(ctrl),
			}
			tt.setupMock(m)

			svc := settlement.NewService(m.ledger, m.tasks, m.users)
			conf, err := svc.Confirm(context.Background(), 1, task.Ref{ID: 7}, tt.autoTopUp)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, conf)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, conf)
			assert.Equal(t, task.StatusConfirmed, conf.Task.Status)
			assert.Equal(t, tt.wantTopUp, conf.AutoTopUpApplied)
			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(conf.Balance),
				"want balance %s, got %s", tt.wantAmount, conf.Balance)

			if tt.wantTopUp {
				require.NotNil(t, conf.TopUp)
				assert.Contains(t, conf.Message, "Auto top-up applied")
			} else {
				assert.Nil(t, conf.TopUp)
			}
		})
	}
}

// Cancelling never touches the ledger, whatever the task status.
func TestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := settlement.NewMockLedger(ctrl)
	tasks := settlement.NewMockTasks(ctrl)
	users := settlement.NewMockUsers(ctrl)

	cancelled := pendingFoodTask()
	cancelled.Status = task.StatusCancelled
	cancelled.Payload.SetStatus(task.StatusCancelled)

	tasks.EXPECT().
		Find(gomock.Any(), int64(1), task.Ref{PayloadID: "food-abc"}).
		Return(pendingFoodTask(), nil)
	tasks.EXPECT().
		UpdateStatus(gomock.Any(), int64(7), task.StatusCancelled).
		Return(cancelled, nil)

	svc := settlement.NewService(ledger, tasks, users)

	got, msg, err := svc.Cancel(context.Background(), 1, task.Ref{PayloadID: "food-abc"})

	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, got.Status)
	assert.Contains(t, msg, "Pizza Express")
	assert.Contains(t, msg, "cancelled")
}

// A cancel for the same user waits for an in-flight confirm, so the status
// cannot flip to cancelled between the confirm's status check and its debit.
func TestService_Cancel_WaitsForConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := settlement.NewMockLedger(ctrl)
	tasks := settlement.NewMockTasks(ctrl)
	users := settlement.NewMockUsers(ctrl)

	confirmEntered := make(chan struct{})
	confirmRelease := make(chan struct{})

	tasks.EXPECT().
		Find(gomock.Any(), int64(1), task.Ref{ID: 7}).
		Return(pendingFoodTask(), nil).
		Times(2)
	ledger.EXPECT().
		Balance(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) (decimal.Decimal, error) {
			close(confirmEntered)
			<-confirmRelease

			return decimal.RequireFromString("100"), nil
		})
	ledger.EXPECT().
		Adjust(gomock.Any(), int64(1), gomock.Any(), "Pizza Express", wallet.TypeFood).
		Return(decimal.RequireFromString("78.02"), &wallet.Transaction{ID: 31, UserID: 1}, nil)
	tasks.EXPECT().
		UpdateStatus(gomock.Any(), int64(7), task.StatusConfirmed).
		Return(confirmedFoodTask(), nil)
	tasks.EXPECT().
		UpdatePayload(gomock.Any(), int64(7), gomock.Any()).
		Return(nil)

	cancelled := pendingFoodTask()
	cancelled.Status = task.StatusCancelled
	cancelled.Payload.SetStatus(task.StatusCancelled)

	tasks.EXPECT().
		UpdateStatus(gomock.Any(), int64(7), task.StatusCancelled).
		Return(cancelled, nil)

	svc := settlement.NewService(ledger, tasks, users)

	confirmDone := make(chan struct{})
	go func() {
		defer close(confirmDone)

		_, err := svc.Confirm(context.Background(), 1, task.Ref{ID: 7}, false)
		assert.NoError(t, err)
	}()

	<-confirmEntered

	cancelDone := make(chan struct{})
	go func() {
		defer close(cancelDone)

		_, _, err := svc.Cancel(context.Background(), 1, task.Ref{ID: 7})
		assert.NoError(t, err)
	}()

	select {
	case <-cancelDone:
		t.Fatal("cancel completed while a confirm held the user lock")
	case <-time.After(50 * time.Millisecond):
	}

	close(confirmRelease)
	<-confirmDone
	<-cancelDone
}

func TestService_ProcessPayment(t *testing.T) {
	type testCase struct {
		name      string
		amount    string
		autoTopUp bool
		setupMock func(ledger *settlement.MockLedger)
		wantErr   error
		wantTopUp bool
	}

	tests := []testCase{
		{
			name:   "SufficientFunds",
			amount: "28.00",
			setupMock: func(ledger *settlement.MockLedger) {
				ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.RequireFromString("100"), nil)
				ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Movie night tickets", wallet.TypeTicket).
					Return(decimal.RequireFromString("72"), &wallet.Transaction{ID: 21, UserID: 1}, nil)
			},
		},
		{
			name:      "AutoTopUpQuantized",
			amount:    "83.00",
			autoTopUp: true,
			setupMock: func(ledger *settlement.MockLedger) {
				ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.RequireFromString("10"), nil)
				ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Auto Top-up", wallet.TypeTopUp).
					DoAndReturn(func(_ context.Context, userID int64, delta decimal.Decimal, desc string, txType wallet.Type) (decimal.Decimal, *wallet.Transaction, error) {
						assert.True(t, decimal.RequireFromString("100").Equal(delta), "shortfall of 73 must top up two 50 increments, got %s", delta)
						return decimal.RequireFromString("110"), &wallet.Transaction{ID: 22, UserID: 1}, nil
					})
				ledger.EXPECT().
					Adjust(gomock.Any(), int64(1), gomock.Any(), "Movie night tickets", wallet.TypeTicket).
					Return(decimal.RequireFromString("27"), &wallet.Transaction{ID: 23, UserID: 1}, nil)
			},
			wantTopUp: true,
		},
		{
			name:      "InsufficientWithoutFlag",
			amount:    "83.00",
			autoTopUp: false,
			setupMock: func(ledger *settlement.MockLedger) {
				ledger.EXPECT().
					Balance(gomock.Any(), int64(1)).
					Return(decimal.RequireFromString("10"), nil)
			},
			wantErr: wallet.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := settlement.NewMockLedger(ctrl)
			tasks := settlement.NewMockTasks(ctrl)
			users := settlement.NewMockUsers(ctrl)
			tt.setupMock(ledger)

			svc := settlement.NewService(ledger, tasks, users)

			payment, err := svc.ProcessPayment(context.Background(), 1,
				decimal.RequireFromString(tt.amount), "Movie night tickets", tt.autoTopUp)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, payment)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, payment)
			assert.Equal(t, tt.wantTopUp, payment.AutoTopUpApplied)
		})
	}
}
