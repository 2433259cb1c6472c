package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jarvish-app/jarvish/internal/task"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := task.NewMockRepository(ctrl)
	m.EXPECT().
		CreateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, created *task.Task) error {
			assert.Equal(t, task.TypeFood, created.Type)
			assert.Equal(t, task.StatusPending, created.Status)
			assert.Equal(t, task.StatusPending, created.Payload.(*task.FoodOrder).Status)
			created.ID = 12

			return nil
		})

	svc := task.NewService(m)

	// Status is empty on the payload; Create must stamp it before storing.
	created, err := svc.Create(context.Background(), 1, task.StatusPending, &task.FoodOrder{
		ID:         "food-abc",
		Type:       task.TypeFood,
		Restaurant: "Pizza Express",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)
	assert.Equal(t, int64(1), created.UserID)
}

func TestService_Find(t *testing.T) {
	type testCase struct {
		name      string
		ref       task.Ref
		setupMock func(m *task.MockRepository)
		wantErr   error
	}

	owned := &task.Task{ID: 7, UserID: 1, Type: task.TypeFood, Status: task.StatusPending}

	tests := []testCase{
		{
			name: "ByRowID",
			ref:  task.Ref{ID: 7},
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().GetTask(gomock.Any(), int64(7)).Return(owned, nil)
			},
		},
		{
			// Row ids are global, so ownership is checked after the lookup.
			name: "ByRowIDWrongOwner",
			ref:  task.Ref{ID: 7},
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().
					GetTask(gomock.Any(), int64(7)).
					Return(&task.Task{ID: 7, UserID: 99}, nil)
			},
			wantErr: task.ErrNotFound,
		},
		{
			name: "ByPayloadID",
			ref:  task.Ref{PayloadID: "food-abc"},
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().
					GetTaskByPayloadID(gomock.Any(), int64(1), "food-abc").
					Return(owned, nil)
			},
		},
		{
			name: "Missing",
			ref:  task.Ref{ID: 99},
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().GetTask(gomock.Any(), int64(99)).Return(nil, task.ErrNotFound)
			},
			wantErr: task.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := task.NewMockRepository(ctrl)
			tt.setupMock(m)

			svc := task.NewService(m)

			got, err := svc.Find(context.Background(), 1, tt.ref)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := task.NewMockRepository(ctrl)
	m.EXPECT().DeleteTask(gomock.Any(), int64(7)).Return(nil)

	svc := task.NewService(m)

	assert.NoError(t, svc.Delete(context.Background(), 7))
}
