// Package view holds the wallet's view state: loading until startup finishes,
// then either ready with a connected session or failed with a message.
package view

import (
	"context"
	"errors"
	"sync"

	"github.com/AlexZinkM/cw721-wallet/internal/common"
	"github.com/AlexZinkM/cw721-wallet/internal/config"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
)

type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// ErrNotReady is returned when an action is requested outside the ready phase.
var ErrNotReady = errors.New("wallet is not ready")

// ErrAlreadyStarted is returned when Run is called on a store that left the loading phase.
var ErrAlreadyStarted = errors.New("startup already ran")

// Session is a connected signing client as seen by the view.
type Session interface {
	cw721.SigningClient
	SignerAddress() string
	Close() error
}

// Ready is everything an action needs once startup succeeded.
type Ready struct {
	Address  string
	Network  config.NetworkConfig
	Session  Session
	Client   cw721.SigningClient
	Contract *cw721.Contract
}

// State is an immutable snapshot of the store.
// Ready is set only in PhaseReady, Message only in PhaseError.
type State struct {
	Phase   Phase
	Message string
	Ready   *Ready
}

// Store is the view state container. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: PhaseLoading}}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready returns the ready state or ErrNotReady with the current message.
func (s *Store) Ready() (*Ready, error) {
	st := s.Snapshot()
	if st.Phase != PhaseReady {
		if st.Message != "" {
			return nil, errors.Join(ErrNotReady, errors.New(st.Message))
		}
		return nil, ErrNotReady
	}
	return st.Ready, nil
}

// Run performs the single loading transition using b.
func (s *Store) Run(ctx context.Context, b *Bootstrapper) error {
	if s.Snapshot().Phase != PhaseLoading {
		return ErrAlreadyStarted
	}

	ready, err := b.Run(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	s.setReady(ready)
	return nil
}

// UseContract rebinds the ready state to contractAddress, e.g. after an instantiate.
func (s *Store) UseContract(contractAddress string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseReady {
		return ErrNotReady
	}
	next := *s.state.Ready
	next.Contract = cw721.New(contractAddress, next.Client)
	s.state.Ready = &next
	return nil
}

// Close ends the session of the ready state, if any.
func (s *Store) Close() error {
	st := s.Snapshot()
	if st.Phase != PhaseReady {
		return nil
	}
	return st.Ready.Session.Close()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Phase: PhaseError, Message: common.ErrorMessage(err)}
}

func (s *Store) setReady(ready *Ready) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Phase: PhaseReady, Ready: ready}
}
