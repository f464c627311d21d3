/*
 * Copyright 2026 Jihyung Song.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tx is the per-operation compensating-transaction
// coordinator. Managers register a small value-typed action for every
// durable side effect; on a later failure in the same logical
// operation the coordinator undoes the registered actions in reverse
// order. This is best-effort compensation, not ACID: a failed undo is
// logged and superseded by the original error.
package tx

//go:generate mockgen -destination=mock_tx.go -package=tx github.com/jihyungSong/inventory/pkg/tx Reverter

import (
	"context"
	"encoding/json"

	"github.com/jihyungSong/inventory/pkg/logger"
	"github.com/jihyungSong/inventory/pkg/metrics"
)

// Kind enumerates the compensating action types.
type Kind string

const (
	// KindDeleteCreated removes a record created earlier in the operation.
	KindDeleteCreated Kind = "delete_created"
	// KindRestoreSnapshot writes back the pre-update document.
	KindRestoreSnapshot Kind = "restore_snapshot"
)

// Entity names the record collection an action targets.
type Entity string

const (
	EntityDevice         Entity = "device"
	EntityDeviceType     Entity = "device_type"
	EntityDeviceTemplate Entity = "device_template"
)

// Action is one registered compensating step. Actions are plain
// values, no captured closures, so they can be logged and inspected.
type Action struct {
	Kind     Kind            `json:"kind"`
	Entity   Entity          `json:"entity"`
	ID       string          `json:"id"`
	Domain   string          `json:"domain_id"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

// Reverter executes compensating actions against durable storage.
// Implemented by the persistence layer.
type Reverter interface {
	DeleteCreated(ctx context.Context, entity Entity, id, domain string) error
	RestoreSnapshot(ctx context.Context, entity Entity, id, domain string, snapshot json.RawMessage) error
}

// DeleteCreated builds the inverse of a create.
func DeleteCreated(entity Entity, id, domain string) Action {
	return Action{Kind: KindDeleteCreated, Entity: entity, ID: id, Domain: domain}
}

// RestoreSnapshot builds the inverse of an update from the pre-update
// document.
func RestoreSnapshot(entity Entity, id, domain string, previous any) (Action, error) {
	snapshot, err := json.Marshal(previous)
	if err != nil {
		return Action{}, err
	}

	return Action{Kind: KindRestoreSnapshot, Entity: entity, ID: id, Domain: domain, Snapshot: snapshot}, nil
}

// Transaction is the per-operation action stack. It is scoped to a
// single logical operation and discarded afterwards; it is not safe
// for concurrent use and does not need to be.
type Transaction struct {
	reverter Reverter
	log      logger.Logger
	actions  []Action
}

// New starts an empty transaction.
func New(reverter Reverter, log logger.Logger) *Transaction {
	return &Transaction{reverter: reverter, log: log.WithComponent("tx")}
}

// Add pushes a compensating action for a side effect that was just
// (or is about to be) applied.
func (t *Transaction) Add(action Action) {
	t.actions = append(t.actions, action)
}

// Len reports the number of pending actions.
func (t *Transaction) Len() int { return len(t.actions) }

// Rollback executes the registered actions in LIFO order, logging
// each one. Undo failures are logged and skipped so the caller's
// original error is never masked. Rollback runs even when ctx is
// already canceled: a registered side effect must stay undoable after
// a late cancellation.
func (t *Transaction) Rollback(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	for i := len(t.actions) - 1; i >= 0; i-- {
		action := t.actions[i]

		t.log.Info().
			Str("kind", string(action.Kind)).
			Str("entity", string(action.Entity)).
			Str("id", action.ID).
			Str("domain_id", action.Domain).
			Msg("Rolling back")

		var err error

		switch action.Kind {
		case KindDeleteCreated:
			err = t.reverter.DeleteCreated(ctx, action.Entity, action.ID, action.Domain)
		case KindRestoreSnapshot:
			err = t.reverter.RestoreSnapshot(ctx, action.Entity, action.ID, action.Domain, action.Snapshot)
		}

		metrics.ObserveRollback(string(action.Entity), err == nil)

		if err != nil {
			t.log.Error().
				Err(err).
				Str("kind", string(action.Kind)).
				Str("entity", string(action.Entity)).
				Str("id", action.ID).
				Msg("Rollback action failed")
		}
	}

	t.actions = nil
}

// Discard drops the stack after a successful operation.
func (t *Transaction) Discard() {
	t.actions = nil
}
