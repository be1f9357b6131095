package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPathRequest(ctx context.Context, data PathRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathRequestEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetLevel(data.Level).
		SetStepsPlanned(data.StepsPlanned).
		SetStepsReturned(data.StepsReturned).
		SetDurationMs(data.DurationMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path request event: %w", err)
	}

	return nil
}
