// internal/workers/tasks_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wreckers-gateway/internal/workers"
	"github.com/ammerola/wreckers-gateway/test/helpers"
)

type fakeTaskClient struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeTaskClient) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestEnqueuer_EnqueueSitemapRefresh(t *testing.T) {
	tests := []struct {
		name          string
		clientErr     error
		expectedTasks int
		expectedError bool
	}{
		{name: "queues_task", expectedTasks: 1},
		{name: "duplicate_is_not_an_error", clientErr: asynq.ErrDuplicateTask},
		{name: "broker_failure", clientErr: errors.New("connection refused"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeTaskClient{err: tt.clientErr}
			enq := workers.NewEnqueuer(client, 3, helpers.TestLogger())

			err := enq.EnqueueSitemapRefresh(context.Background(), "part created")

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to enqueue sitemap refresh")
				return
			}
			require.NoError(t, err)
			require.Len(t, client.tasks, tt.expectedTasks)

			if tt.expectedTasks > 0 {
				task := client.tasks[0]
				assert.Equal(t, workers.TypeSitemapGenerate, task.Type())

				var payload workers.SitemapPayload
				require.NoError(t, json.Unmarshal(task.Payload(), &payload))
				assert.Equal(t, "part created", payload.Reason)
				assert.False(t, payload.RequestedAt.IsZero())
			}
		})
	}
}

func TestEnqueuer_EnqueueCatalogWarmup(t *testing.T) {
	client := &fakeTaskClient{}
	enq := workers.NewEnqueuer(client, 3, helpers.TestLogger())

	require.NoError(t, enq.EnqueueCatalogWarmup(context.Background()))
	require.Len(t, client.tasks, 1)
	assert.Equal(t, workers.TypeCatalogWarmup, client.tasks[0].Type())

	client.err = asynq.ErrDuplicateTask
	assert.NoError(t, enq.EnqueueCatalogWarmup(context.Background()))
}
