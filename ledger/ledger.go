// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/events"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/instruction"
	"github.com/bitmark-inc/whisperd/record"
	"github.com/bitmark-inc/whisperd/storage"
)

// Handle - the operations offered to the RPC layer
type Handle interface {
	CreateConfession(*account.Authorisation, string, address.Address) (*record.Confession, error)
	LikeConfession(*account.Authorisation, address.Address) (*record.Confession, error)
	CommentConfession(*account.Authorisation, string, address.Address, address.Address) (*record.Comment, error)
	Confession(address.Address) (*record.Confession, error)
	Comment(address.Address) (*record.Comment, error)
	Process(instruction.Instruction) (interface{}, error)
	Deriver() *address.Deriver
}

// Pools - the storage used by the ledger
type Pools struct {
	Confessions *storage.PoolHandle
	Comments    *storage.PoolHandle
}

// Ledger - applies signed operations to the stored records
type Ledger struct {
	log            *logger.L
	pools          Pools
	deriver        *address.Deriver
	clock          func() time.Time
	publisher      events.Publisher
	locks          *lockSet
	newTransaction func() (storage.Transaction, error)
}

// New - create a ledger
//
// a nil publisher discards events, a nil clock uses the system time
func New(log *logger.L, pools Pools, deriver *address.Deriver, publisher events.Publisher, clock func() time.Time) *Ledger {
	if nil == publisher {
		publisher = &events.NoopPublisher{}
	}
	if nil == clock {
		clock = time.Now
	}
	return &Ledger{
		log:            log,
		pools:          pools,
		deriver:        deriver,
		clock:          clock,
		publisher:      publisher,
		locks:          newLockSet(),
		newTransaction: storage.NewDBTransaction,
	}
}

// Deriver - the address deriver used for all records
func (l *Ledger) Deriver() *address.Deriver {
	return l.deriver
}

// Confession - read a committed confession
func (l *Ledger) Confession(a address.Address) (*record.Confession, error) {
	packed := l.pools.Confessions.Get(a[:])
	if nil == packed {
		return nil, fault.AddressNotFound
	}
	return record.ConfessionFromBytes(packed)
}

// Comment - read a committed comment
func (l *Ledger) Comment(a address.Address) (*record.Comment, error) {
	packed := l.pools.Comments.Get(a[:])
	if nil == packed {
		return nil, fault.AddressNotFound
	}
	return record.CommentFromBytes(packed)
}

// Process - authorise a signed instruction and apply it
//
// the target addresses are derived from the signer, so a caller
// cannot direct a write anywhere else
func (l *Ledger) Process(i instruction.Instruction) (interface{}, error) {
	if nil == i {
		return nil, fault.UnknownInstruction
	}

	auth, err := i.Authorise()
	if nil != err {
		return nil, err
	}

	switch tx := i.(type) {

	case *instruction.CreateConfession:
		target, _, err := l.deriver.Confession(auth.Key())
		if nil != err {
			return nil, allocationError(err)
		}
		return l.CreateConfession(auth, tx.ContentURI, target)

	case *instruction.LikeConfession:
		return l.LikeConfession(auth, tx.Confession)

	case *instruction.CommentConfession:
		target, _, err := l.deriver.Comment(tx.Confession, auth.Key())
		if nil != err {
			return nil, allocationError(err)
		}
		return l.CommentConfession(auth, tx.ContentURI, tx.Confession, target)

	default:
		return nil, fault.UnknownInstruction
	}
}

// run f inside a fresh transaction holding the locks on addresses
//
// f's writes are committed only if it returns nil
func (l *Ledger) transact(f func(storage.Transaction) error, addresses ...address.Address) error {
	unlock := l.locks.lock(addresses...)
	defer unlock()

	trx, err := l.newTransaction()
	if nil != err {
		l.log.Errorf("new transaction error: %s", err)
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Errorf("commit error: %s", err)
		trx.Abort()
		return err
	}
	return nil
}

// events are observability only: a failure is logged, never returned
func (l *Ledger) publish(topic string, event interface{}) {
	err := l.publisher.Publish(context.Background(), topic, event)
	if nil != err {
		l.log.Warnf("publish: %s  error: %s", topic, err)
	}
}

// an exhausted nonce search means nothing can be allocated
func allocationError(err error) error {
	if fault.NoValidNonce == err {
		return fault.InsufficientAllocationSpace
	}
	return err
}

// fetch a confession through the transaction and check it sits at
// the address its own seeds derive to
func (l *Ledger) readConfession(trx storage.Transaction, a address.Address) (*record.Confession, error) {
	packed := trx.Get(l.pools.Confessions, a[:])
	if nil == packed {
		return nil, fault.AddressNotFound
	}
	confession, err := record.ConfessionFromBytes(packed)
	if nil != err {
		return nil, err
	}
	if !l.deriver.VerifyConfession(a, confession.Nonce, confession.Author) {
		return nil, fault.AddressMismatch
	}
	return confession, nil
}

// pack and check the record fills exactly its allocation
func pack(r record.Record) (record.Packed, error) {
	packed, err := r.Pack()
	if nil != err {
		return nil, err
	}
	if len(packed) != r.Space() {
		return nil, fault.InsufficientAllocationSpace
	}
	return packed, nil
}
