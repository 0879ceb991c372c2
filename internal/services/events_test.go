package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	event := models.Event{
		Type:          models.EventApplicationSubmitted,
		UserID:        3,
		ApplicationID: 55,
		JobID:         7,
	}

	t.Run("Written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockKafkaWriter(ctrl)
		observer := NewMockEventObserver(ctrl)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "55", string(msgs[0].Key))
				require.Len(t, msgs[0].Headers, 1)
				assert.Equal(t, models.EventApplicationSubmitted, string(msgs[0].Headers[0].Value))

				var got models.Event
				require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
				assert.NotEmpty(t, got.EventID)
				assert.NotZero(t, got.Timestamp)
				assert.Equal(t, int64(7), got.JobID)
				return nil
			})
		observer.EXPECT().ObserveEvent(models.EventApplicationSubmitted, "ok")

		NewEventPublisher(writer, observer).Publish(context.Background(), event)
	})

	t.Run("WriteFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockKafkaWriter(ctrl)
		observer := NewMockEventObserver(ctrl)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		observer.EXPECT().ObserveEvent(models.EventApplicationSubmitted, "failed")

		NewEventPublisher(writer, observer).Publish(context.Background(), event)
	})

	t.Run("NoWriter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		observer := NewMockEventObserver(ctrl)
		observer.EXPECT().ObserveEvent(models.EventApplicationSubmitted, "skipped")

		NewEventPublisher(nil, observer).Publish(context.Background(), event)
	})

	t.Run("NoObserver", func(t *testing.T) {
		NewEventPublisher(nil, nil).Publish(context.Background(), event)
	})
}
